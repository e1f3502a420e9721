package cache_utils

import (
	"context"
	"encoding/json"
	"time"

	"github.com/valkey-io/valkey-go"
)

const defaultEntryTTL = 10 * time.Minute

// CacheUtil is a typed wrapper over Valkey with a key prefix. All methods
// are best-effort: cache failures degrade to misses, never to errors. A
// nil client disables the cache entirely.
type CacheUtil[T any] struct {
	client valkey.Client
	prefix string
	ttl    time.Duration
}

func NewCacheUtil[T any](client valkey.Client, prefix string) *CacheUtil[T] {
	return &CacheUtil[T]{
		client: client,
		prefix: prefix,
		ttl:    defaultEntryTTL,
	}
}

func (c *CacheUtil[T]) Get(key string) *T {
	if c.client == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), DefaultCacheTimeout)
	defer cancel()

	result := c.client.Do(ctx, c.client.B().Get().Key(c.prefix+key).Build())
	if result.Error() != nil {
		return nil
	}

	raw, err := result.AsBytes()
	if err != nil {
		return nil
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil
	}

	return &value
}

func (c *CacheUtil[T]) Set(key string, value *T) {
	if c.client == nil || value == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), DefaultCacheTimeout)
	defer cancel()

	c.client.Do(
		ctx,
		c.client.B().Set().
			Key(c.prefix+key).
			Value(string(raw)).
			ExSeconds(int64(c.ttl.Seconds())).
			Build(),
	)
}

func (c *CacheUtil[T]) Invalidate(key string) {
	if c.client == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), DefaultCacheTimeout)
	defer cancel()

	c.client.Do(ctx, c.client.B().Del().Key(c.prefix+key).Build())
}
