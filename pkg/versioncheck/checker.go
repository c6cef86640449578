// Package versioncheck holds best-effort check of addon version against remote endpoint.
package versioncheck

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/moul/http2curl"
	"github.com/tidwall/gjson"

	"github.com/wojsza/gmodutils/pkg/format"
)

// ErrVersionCheck occurs when remote version could not be obtained.
var ErrVersionCheck = errors.New("could not check remote version")

// DefaultVersionPath is gjson path under which JSON endpoints publish version.
const DefaultVersionPath = "version"

// RequestDoer describes ability to make HTTP(s) requests.
type RequestDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// sink is diagnostic output channel of checker.
type sink interface {
	Print(info string)
	IsOn() bool
}

// Checker is entity that has ability to fetch published addon version from
// remote endpoint. Single GET, no retries; failures are reported, never fatal.
type Checker struct {
	cli RequestDoer

	// versionPath is gjson path of version field inside JSON response body.
	versionPath string

	debugger sink
}

// New returns Checker issuing requests through provided RequestDoer.
func New(cli RequestDoer, d sink) Checker {
	return Checker{cli: cli, versionPath: DefaultVersionPath, debugger: d}
}

// WithVersionPath returns copy of Checker reading version from provided gjson path.
func (c Checker) WithVersionPath(path string) Checker {
	c.versionPath = path

	return c
}

// Fetch obtains published version from addr. Plain text bodies are used
// verbatim, JSON bodies have version extracted from configured path.
func (c Checker) Fetch(addr string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, addr, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrVersionCheck, err.Error())
	}

	if c.debugger != nil && c.debugger.IsOn() {
		command, _ := http2curl.GetCurlCommand(req)
		c.debugger.Print(command.String())
	}

	res, err := c.cli.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrVersionCheck, err.Error())
	}

	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: endpoint %s responded with status %d", ErrVersionCheck, addr, res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrVersionCheck, err.Error())
	}

	if format.IsJSON(body) {
		version := gjson.GetBytes(body, c.versionPath)
		if !version.Exists() {
			return "", fmt.Errorf("%w: response has no field under path %s", ErrVersionCheck, c.versionPath)
		}

		return version.String(), nil
	}

	remote := strings.TrimSpace(string(body))
	if remote == "" {
		return "", fmt.Errorf("%w: endpoint %s responded with empty body", ErrVersionCheck, addr)
	}

	return remote, nil
}

// IsOutdated tells whether current version is older than remote one.
func (c Checker) IsOutdated(current, remote string) (bool, error) {
	cmp, err := Compare(current, remote)
	if err != nil {
		return false, err
	}

	return cmp < 0, nil
}
