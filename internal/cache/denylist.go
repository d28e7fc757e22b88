package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenDenylist records session tokens revoked before their expiry.
type TokenDenylist interface {
	// Revoke marks a token hash as revoked for ttl.
	Revoke(ctx context.Context, tokenHash string, ttl time.Duration) error
	// IsRevoked reports whether a token hash was revoked.
	IsRevoked(ctx context.Context, tokenHash string) (bool, error)
}

// RedisClientProvider provides access to the underlying Redis client.
type RedisClientProvider interface {
	Client() *redis.Client
}

type tokenDenylist struct {
	cache  Cache
	client *redis.Client
}

// NewTokenDenylist creates a TokenDenylist on top of a cache. When the
// cache is backed by Redis, revocations are written with SET NX so an
// existing entry keeps its TTL.
func NewTokenDenylist(cache Cache) TokenDenylist {
	list := &tokenDenylist{cache: cache}
	if provider, ok := cache.(RedisClientProvider); ok {
		list.client = provider.Client()
	}
	return list
}

// RevokedTokenCacheKey generates a cache key for a revoked token hash.
func RevokedTokenCacheKey(tokenHash string) string {
	return fmt.Sprintf("revoked:%s", tokenHash)
}

func (d *tokenDenylist) Revoke(ctx context.Context, tokenHash string, ttl time.Duration) error {
	if ttl <= 0 {
		// Already expired, nothing to deny
		return nil
	}
	key := RevokedTokenCacheKey(tokenHash)
	if d.client != nil {
		// "true" keeps the entry readable through Cache.Get as well
		return d.client.SetNX(ctx, key, "true", ttl).Err()
	}
	return d.cache.Set(ctx, key, true, ttl)
}

func (d *tokenDenylist) IsRevoked(ctx context.Context, tokenHash string) (bool, error) {
	if d.client != nil {
		n, err := d.client.Exists(ctx, RevokedTokenCacheKey(tokenHash)).Result()
		if err != nil {
			return false, err
		}
		return n > 0, nil
	}

	var revoked bool
	found, err := d.cache.Get(ctx, RevokedTokenCacheKey(tokenHash), &revoked)
	if err != nil {
		return false, err
	}
	return found, nil
}
