// Package cache memoizes raw provider responses for the lifetime of one
// process, so repeating a request inside a session does not burn a second
// model call.
package cache

import (
	"time"

	"github.com/jellydator/ttlcache/v3"

	"github.com/doeshing/wtf/internal/ports"
)

const (
	defaultTTL     = time.Hour
	defaultEntries = 100
)

// Memory is a TTL-bounded in-memory response cache.
type Memory struct {
	inner *ttlcache.Cache[string, string]
}

// NewMemory builds the cache with the default TTL and capacity.
func NewMemory() *Memory {
	return &Memory{
		inner: ttlcache.New[string, string](
			ttlcache.WithTTL[string, string](defaultTTL),
			ttlcache.WithCapacity[string, string](defaultEntries),
		),
	}
}

// Get returns the cached value for key, if present and fresh.
func (m *Memory) Get(key string) (string, bool) {
	item := m.inner.Get(key)
	if item == nil {
		return "", false
	}
	return item.Value(), true
}

// Set stores value under key with the default TTL.
func (m *Memory) Set(key, value string) {
	m.inner.Set(key, value, ttlcache.DefaultTTL)
}

var _ ports.ResponseCache = (*Memory)(nil)
