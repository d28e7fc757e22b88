package cache

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mocks/mock_cache.go -package=mocks tourbook/internal/cache Cache,TokenDenylist

// Cache defines the interface for caching operations.
type Cache interface {
	// Set stores a value in cache with TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	// Get retrieves a value from cache. Returns false if key doesn't exist.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	// Delete removes a key from cache.
	Delete(ctx context.Context, key string) error
}

// Ensure implementations satisfy Cache
var (
	_ Cache = (*Redis)(nil)
	_ Cache = Noop{}
)

// Noop is the cache used when Redis is not configured. Every lookup misses.
type Noop struct{}

// Set discards the value.
func (Noop) Set(context.Context, string, interface{}, time.Duration) error { return nil }

// Get always misses.
func (Noop) Get(context.Context, string, interface{}) (bool, error) { return false, nil }

// Delete does nothing.
func (Noop) Delete(context.Context, string) error { return nil }
