package gmodutils

import (
	"github.com/wojsza/gmodutils/pkg/loader"
	"github.com/wojsza/gmodutils/pkg/schema"
	"github.com/wojsza/gmodutils/pkg/types"
)

// cacheable represents ability to store/retrieve arbitrary values.
type cacheable interface {
	// Save preserve provided value under given key.
	Save(key string, value any)

	// GetSaved retrieve value from given key.
	GetSaved(key string) (any, error)

	// Reset turns cache into init state - clears all entries.
	Reset()

	// All returns all cache entries.
	All() map[string]any
}

// debuggable defines desired debugger behaviour.
type debuggable interface {
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

// deserializable describes ability to deserialize data
type deserializable interface {
	// Deserialize deserializes data on v
	Deserialize(data []byte, v any) error
}

// recordValidator describes entity that has ability to validate record against schema of rules.
type recordValidator interface {
	// Validate checks record against schema, aggregating all violations.
	Validate(s schema.Schema, r schema.Record, label string) (bool, []schema.Violation)
}

// scriptLoader describes entity that has ability to load addon scripts into the host runtime.
type scriptLoader interface {
	// LoadFile loads single script file.
	LoadFile(scriptPath string) (loader.Realm, error)

	// LoadDirectory loads all script files of directory.
	LoadDirectory(dir string) ([]string, error)
}

// versionChecker describes entity that has ability to obtain published addon version.
type versionChecker interface {
	// Fetch obtains published version from remote endpoint.
	Fetch(addr string) (string, error)

	// IsOutdated tells whether current version is older than remote one.
	IsOutdated(current, remote string) (bool, error)
}

// typeMapper represents entity that has ability to map data's type into corresponding types.DataType.
type typeMapper interface {
	// Map maps data type.
	Map(data any) types.DataType
}
