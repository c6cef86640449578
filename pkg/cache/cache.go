// Package cache holds key/value stores used as loader registry and for
// preserving arbitrary values between operations.
package cache

import (
	"errors"
)

// ErrMissingKey occurs when cache doesn't have any value under given key.
var ErrMissingKey = errors.New("missing key")

// Cache represents ability to store and retrieve arbitrary values.
type Cache interface {
	// Save preserves value under given key.
	Save(key string, value any)

	// GetSaved returns preserved value if present, error otherwise.
	GetSaved(key string) (any, error)

	// Reset turns cache into initial state - clears all entries.
	Reset()

	// All returns all current cache data.
	All() map[string]any
}
