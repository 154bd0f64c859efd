package driver

import (
	"sync"

	"lust/internal/project"
)

// MemCache — кэш в памяти процесса; для watch-режима и LSP.
// Next, если задан, опрашивается при промахе и получает все Put.
type MemCache struct {
	mu    sync.RWMutex
	byKey map[project.Digest]DiskPayload
	Next  Cache
}

// NewMemCache creates a MemCache with the given capacity hint.
func NewMemCache(capHint int, next Cache) *MemCache {
	return &MemCache{byKey: make(map[project.Digest]DiskPayload, capHint), Next: next}
}

func (c *MemCache) Get(key project.Digest, out *DiskPayload) (bool, error) {
	c.mu.RLock()
	rec, ok := c.byKey[key]
	c.mu.RUnlock()
	if ok {
		*out = rec
		return true, nil
	}
	if c.Next == nil {
		return false, nil
	}
	ok, err := c.Next.Get(key, out)
	if err != nil || !ok {
		return false, err
	}
	c.mu.Lock()
	c.byKey[key] = *out
	c.mu.Unlock()
	return true, nil
}

func (c *MemCache) Put(key project.Digest, payload *DiskPayload) error {
	if payload == nil {
		return nil
	}
	c.mu.Lock()
	c.byKey[key] = *payload
	c.mu.Unlock()
	if c.Next != nil {
		return c.Next.Put(key, payload)
	}
	return nil
}

func (c *MemCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.byKey)
}
