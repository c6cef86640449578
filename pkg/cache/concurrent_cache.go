package cache

import (
	"fmt"
	"sync"
)

// ConcurrentCache is entity that has ability to store and retrieve arbitrary values.
// Safe for concurrent use.
type ConcurrentCache struct {
	entries sync.Map
}

// NewConcurrentCache returns pointer to ConcurrentCache safe for concurrent use
func NewConcurrentCache() *ConcurrentCache { return &ConcurrentCache{entries: sync.Map{}} }

func (c *ConcurrentCache) Save(key string, value any) {
	c.entries.Store(key, value)
}

func (c *ConcurrentCache) GetSaved(key string) (any, error) {
	val, ok := c.entries.Load(key)
	if !ok {
		return val, fmt.Errorf("%w: %s", ErrMissingKey, key)
	}

	return val, nil
}

func (c *ConcurrentCache) Reset() {
	c.entries = sync.Map{}
}

func (c *ConcurrentCache) All() map[string]any {
	tmpMap := make(map[string]any)
	c.entries.Range(func(key, value any) bool {
		keyStr, ok := key.(string)
		if !ok {
			return true
		}

		tmpMap[keyStr] = value

		return true
	})

	return tmpMap
}
