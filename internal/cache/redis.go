// Package cache provides caching functionality using Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// UserCacheTTL bounds how long a session lookup may serve a stale user.
const UserCacheTTL = 15 * time.Minute

// Redis wraps the Redis client.
type Redis struct {
	client *redis.Client
	log    *zap.Logger
}

// NewRedis creates a new Redis connection. uri is host:port or a full
// redis:// URL.
func NewRedis(uri string, log *zap.Logger) *Redis {
	if !strings.Contains(uri, "://") {
		uri = "redis://" + uri
	}
	opt, err := redis.ParseURL(uri)
	if err != nil {
		log.Fatal("Failed to parse Redis URI", zap.Error(err))
	}

	client := redis.NewClient(opt)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	log.Info("Connected to Redis", zap.String("addr", opt.Addr))

	return &Redis{client: client, log: log}
}

// NewRedisFromClient wraps an existing client.
func NewRedisFromClient(client *redis.Client, log *zap.Logger) *Redis {
	return &Redis{client: client, log: log}
}

// Client exposes the underlying client for atomic operations.
func (r *Redis) Client() *redis.Client {
	return r.client
}

// Close closes the Redis connection.
func (r *Redis) Close() {
	if err := r.client.Close(); err != nil {
		r.log.Error("Error closing Redis connection", zap.Error(err))
		return
	}
	r.log.Info("Disconnected from Redis")
}

// Set stores a value in cache with TTL.
func (r *Redis) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	return r.client.Set(ctx, key, data, ttl).Err()
}

// Get retrieves a value from cache.
// Returns false if key doesn't exist.
func (r *Redis) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil // Key doesn't exist
		}
		return false, err
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal value: %w", err)
	}

	return true, nil
}

// Delete removes a key from cache.
func (r *Redis) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

// UserCacheKey generates a cache key for a user.
func UserCacheKey(userID string) string {
	return fmt.Sprintf("user:%s", userID)
}
