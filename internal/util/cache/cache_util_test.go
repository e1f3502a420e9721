package cache_utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Without a configured cache server the util must behave as an always-miss
// cache instead of failing.
func Test_CacheUtil_WithNilClient_AlwaysMisses(t *testing.T) {
	cache := NewCacheUtil[string](nil, "test:")

	value := "cached value"
	cache.Set("key", &value)

	assert.Nil(t, cache.Get("key"))

	// Invalidate on a disabled cache must not panic
	cache.Invalidate("key")
}
