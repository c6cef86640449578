package loader

import (
	"github.com/charmbracelet/log"
)

// LogIncluder is Includer that only logs dispatch decisions. Useful as default
// when tooling runs outside of the host runtime.
type LogIncluder struct {
	logger *log.Logger
}

// NewLogIncluder returns LogIncluder writing through provided logger.
func NewLogIncluder(logger *log.Logger) LogIncluder {
	return LogIncluder{logger: logger}
}

// Include logs that script would be executed on the server side.
func (li LogIncluder) Include(scriptPath string) error {
	li.logger.Info("include", "script", scriptPath)

	return nil
}

// SendToClient logs that script would be sent to clients.
func (li LogIncluder) SendToClient(scriptPath string) error {
	li.logger.Info("send to client", "script", scriptPath)

	return nil
}
