/* Copyright 2025 AINotes Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package otp

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/ainotes/ainotes/pkg/clock"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is an error for a key that is absent or expired
var ErrCacheMiss = errors.New("cache entry not found")

// Cache is a keyed store with per-entry TTL. The production
// implementation is backed by redis; tests use the in-memory one.
type Cache interface {
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Get(ctx context.Context, key string, dest interface{}) error
	Delete(ctx context.Context, key string) error
}

// RedisCache is a Cache backed by a redis server
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache connects to the redis server at the given URL
func NewRedisCache(redisURL string) (*RedisCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, errors.Wrap(err, "parsing redis url")
	}

	return &RedisCache{client: redis.NewClient(opt)}, nil
}

// Set implements Cache.Set
func (c *RedisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	serialized, err := json.Marshal(value)
	if err != nil {
		return errors.Wrap(err, "serializing cache value")
	}

	if err := c.client.Set(ctx, key, serialized, ttl).Err(); err != nil {
		return errors.Wrap(err, "setting cache key")
	}

	return nil
}

// Get implements Cache.Get
func (c *RedisCache) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	}
	if err != nil {
		return errors.Wrap(err, "getting cache key")
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return errors.Wrap(err, "deserializing cache value")
	}

	return nil
}

// Delete implements Cache.Delete
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return errors.Wrap(err, "deleting cache key")
	}

	return nil
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryCache is an in-memory Cache used in tests and development.
// Expiry is evaluated against the injected clock on read.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	clock   clock.Clock
}

// NewMemoryCache creates a MemoryCache using the given clock
func NewMemoryCache(c clock.Clock) *MemoryCache {
	return &MemoryCache{
		entries: map[string]memoryEntry{},
		clock:   c,
	}
}

// Set implements Cache.Set
func (c *MemoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	serialized, err := json.Marshal(value)
	if err != nil {
		return errors.Wrap(err, "serializing cache value")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = memoryEntry{
		data:      serialized,
		expiresAt: c.clock.Now().Add(ttl),
	}

	return nil
}

// Get implements Cache.Get
func (c *MemoryCache) Get(ctx context.Context, key string, dest interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return ErrCacheMiss
	}
	if c.clock.Now().After(entry.expiresAt) {
		delete(c.entries, key)
		return ErrCacheMiss
	}

	if err := json.Unmarshal(entry.data, dest); err != nil {
		return errors.Wrap(err, "deserializing cache value")
	}

	return nil
}

// Delete implements Cache.Delete
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
	return nil
}
