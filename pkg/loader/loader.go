// Package loader holds realm-aware loader of addon script files.
//
// Loader classifies scripts by filename prefix (cl_, sv_, sh_) and dispatches
// them to the host runtime through Includer: server scripts are included,
// client scripts are sent to clients, shared scripts are both sent and included.
package loader

import (
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// ErrLoad occurs when script file could not be loaded.
var ErrLoad = errors.New("could not load script")

// ScriptExt is file extension of loadable scripts.
const ScriptExt = ".lua"

// Includer abstracts the host runtime operations on a script file.
type Includer interface {
	// Include executes script on the server side.
	Include(scriptPath string) error

	// SendToClient marks script for download and execution by clients.
	SendToClient(scriptPath string) error
}

// registry records realm of every loaded script under its path.
type registry interface {
	Save(key string, value any)
}

// Loader is entity that has ability to load addon scripts from filesystem
// into the host runtime.
type Loader struct {
	fs       afero.Fs
	includer Includer
	registry registry
}

// New returns Loader reading from provided filesystem and dispatching into provided Includer.
func New(fs afero.Fs, includer Includer, r registry) Loader {
	return Loader{fs: fs, includer: includer, registry: r}
}

// LoadFile loads single script file and dispatches it according to its realm.
func (l Loader) LoadFile(scriptPath string) (Realm, error) {
	if !strings.HasSuffix(scriptPath, ScriptExt) {
		return "", fmt.Errorf("%w: %s is not a %s file", ErrLoad, scriptPath, ScriptExt)
	}

	exists, err := afero.Exists(l.fs, scriptPath)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %s", ErrLoad, scriptPath, err.Error())
	}

	if !exists {
		return "", fmt.Errorf("%w: %s does not exist", ErrLoad, scriptPath)
	}

	realm := RealmOf(scriptPath)
	if err := l.dispatch(scriptPath, realm); err != nil {
		return realm, fmt.Errorf("%w: %s: %s", ErrLoad, scriptPath, err.Error())
	}

	if l.registry != nil {
		l.registry.Save(scriptPath, realm)
	}

	return realm, nil
}

// LoadDirectory loads all script files of dir in lexical order, non-recursive.
// Every file is attempted; failures aggregate into single returned error.
// Returns paths of successfully loaded scripts.
func (l Loader) LoadDirectory(dir string) ([]string, error) {
	infos, err := afero.ReadDir(l.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrLoad, dir, err.Error())
	}

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		if info.IsDir() || !strings.HasSuffix(info.Name(), ScriptExt) {
			continue
		}

		names = append(names, info.Name())
	}

	sort.Strings(names)

	var loaded []string
	var failures []string
	for _, name := range names {
		scriptPath := path.Join(dir, name)
		if _, err := l.LoadFile(scriptPath); err != nil {
			failures = append(failures, err.Error())

			continue
		}

		loaded = append(loaded, scriptPath)
	}

	if len(failures) > 0 {
		return loaded, fmt.Errorf("%w: %s", ErrLoad, strings.Join(failures, "; "))
	}

	return loaded, nil
}

func (l Loader) dispatch(scriptPath string, realm Realm) error {
	switch realm {
	case RealmServer:
		return l.includer.Include(scriptPath)
	case RealmClient:
		return l.includer.SendToClient(scriptPath)
	}

	if err := l.includer.SendToClient(scriptPath); err != nil {
		return err
	}

	return l.includer.Include(scriptPath)
}
