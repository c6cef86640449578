// Package logger holds construction of the prefixed console logger.
package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New returns logger writing to w with fixed addon prefix on every line.
func New(prefix string, w io.Writer, isDebug bool) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		ReportTimestamp: false,
	})

	if isDebug {
		l.SetLevel(log.DebugLevel)
	}

	return l
}

// NewDefault returns logger with provided prefix writing to stdErr.
func NewDefault(prefix string) *log.Logger {
	return New(prefix, os.Stderr, false)
}

// ForRealm returns sub-logger carrying realm name next to the addon prefix.
func ForRealm(l *log.Logger, realm string) *log.Logger {
	return l.With("realm", realm)
}
