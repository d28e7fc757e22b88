package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		userID   string
		expected string
	}{
		{"objectid format", "5c8a1d5b0190b214360dc057", "user:5c8a1d5b0190b214360dc057"},
		{"simple id", "123", "user:123"},
		{"empty string", "", "user:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := UserCacheKey(tt.userID)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestRevokedTokenCacheKey(t *testing.T) {
	assert.Equal(t, "revoked:abc123", RevokedTokenCacheKey("abc123"))
	assert.Equal(t, "revoked:", RevokedTokenCacheKey(""))
}

func TestNoop(t *testing.T) {
	ctx := context.Background()
	var c Noop

	require.NoError(t, c.Set(ctx, "k", "v", time.Minute))

	var out string
	found, err := c.Get(ctx, "k", &out)
	require.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, c.Delete(ctx, "k"))
}

// memoryCache records values so the denylist can be exercised without Redis.
type memoryCache struct {
	values map[string]time.Duration
}

func (m *memoryCache) Set(_ context.Context, key string, _ interface{}, ttl time.Duration) error {
	m.values[key] = ttl
	return nil
}

func (m *memoryCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	_, ok := m.values[key]
	if ok {
		if b, isBool := dest.(*bool); isBool {
			*b = true
		}
	}
	return ok, nil
}

func (m *memoryCache) Delete(_ context.Context, key string) error {
	delete(m.values, key)
	return nil
}

func TestTokenDenylist(t *testing.T) {
	ctx := context.Background()

	t.Run("revoked hashes are reported until removed", func(t *testing.T) {
		store := &memoryCache{values: map[string]time.Duration{}}
		list := NewTokenDenylist(store)

		require.NoError(t, list.Revoke(ctx, "hash-1", time.Hour))

		revoked, err := list.IsRevoked(ctx, "hash-1")
		require.NoError(t, err)
		assert.True(t, revoked)
		assert.Equal(t, time.Hour, store.values["revoked:hash-1"])

		revoked, err = list.IsRevoked(ctx, "hash-2")
		require.NoError(t, err)
		assert.False(t, revoked)
	})

	t.Run("expired tokens are not stored", func(t *testing.T) {
		store := &memoryCache{values: map[string]time.Duration{}}
		list := NewTokenDenylist(store)

		require.NoError(t, list.Revoke(ctx, "hash-1", -time.Second))

		assert.Empty(t, store.values)
	})

	t.Run("noop cache never reports revocations", func(t *testing.T) {
		list := NewTokenDenylist(Noop{})

		require.NoError(t, list.Revoke(ctx, "hash-1", time.Hour))
		revoked, err := list.IsRevoked(ctx, "hash-1")

		require.NoError(t, err)
		assert.False(t, revoked)
	})
}
