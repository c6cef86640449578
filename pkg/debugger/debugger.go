// Package debugger holds diagnostic sink of the library. Validator violations,
// loader decisions and version-check curl dumps end up here when debugging
// mode is on.
package debugger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/hokaccha/go-prettyjson"

	"github.com/wojsza/gmodutils/pkg/format"
)

// Debugger represents debugger.
type Debugger interface {
	// Print prints provided info.
	Print(info string)

	// IsOn tells whether debugging mode is activated.
	IsOn() bool

	// TurnOn turns on debugging mode.
	TurnOn()

	// TurnOff turns off debugging mode.
	TurnOff()

	// Reset resets debugging mode to init state.
	Reset(isOn bool)
}

// defaultByteLimit caps single diagnostic line so addon manifests and
// response bodies do not flood the console.
const defaultByteLimit uint16 = 3072

// DebuggerService is diagnostic sink writing byte-limited lines. JSON payloads
// are pretty-printed before writing.
type DebuggerService struct {
	// actualState tells whether debugger is on/off, true = on, false = off.
	actualState bool

	// isColored determines whether JSON payloads are colorized.
	isColored bool

	// limit is the maximum number of bytes of single printed line.
	limit uint16

	// writer is place where output will be written.
	writer io.Writer
}

// New returns *DebuggerService writing to provided writer.
func New(isOn, isColored bool, bytesLimit uint16, writer io.Writer) *DebuggerService {
	return &DebuggerService{actualState: isOn, isColored: isColored, limit: bytesLimit, writer: writer}
}

// NewDefault returns *DebuggerService writing colored output to stdOut.
func NewDefault(isOn bool) *DebuggerService {
	return New(isOn, true, defaultByteLimit, os.Stdout)
}

// IsOn tells whether debugging mode is activated.
func (d *DebuggerService) IsOn() bool {
	return d.actualState
}

// TurnOn turns on debugging mode.
func (d *DebuggerService) TurnOn() {
	d.actualState = true
}

// TurnOff turns off debugging mode.
func (d *DebuggerService) TurnOff() {
	d.actualState = false
}

// Reset resets debugging mode to init state.
func (d *DebuggerService) Reset(isOn bool) {
	d.actualState = isOn
}

// Print prints provided info.
func (d *DebuggerService) Print(info string) {
	_, _ = fmt.Fprintln(d.writer, d.formatInfo(info))
}

// formatInfo pretty-prints JSON payloads and trims output to the byte limit.
func (d *DebuggerService) formatInfo(info string) string {
	output := []byte(info)

	if format.IsJSON(output) {
		var rm json.RawMessage
		_ = json.Unmarshal(output, &rm)

		if d.isColored {
			output, _ = prettyjson.Marshal(rm)
		} else {
			output, _ = json.MarshalIndent(rm, "", "\t")
		}
	}

	if len(output) > int(d.limit) {
		output = output[:d.limit]
	}

	return string(output)
}
