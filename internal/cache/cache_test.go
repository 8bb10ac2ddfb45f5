package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheSetGet(t *testing.T) {
	c := NewCache(time.Minute)

	key := GenerateKey("dump content")
	c.Set(key, []byte(`{"ok":true}`))

	data, found := c.Get(key)
	require.True(t, found)
	assert.Equal(t, `{"ok":true}`, string(data))
}

func TestCacheMiss(t *testing.T) {
	c := NewCache(time.Minute)

	_, found := c.Get(GenerateKey("never stored"))
	assert.False(t, found)
}

func TestCacheExpiry(t *testing.T) {
	c := NewCache(10 * time.Millisecond)

	key := GenerateKey("short lived")
	c.Set(key, []byte("data"))

	time.Sleep(20 * time.Millisecond)

	_, found := c.Get(key)
	assert.False(t, found)
}

func TestGenerateKeyDeterministic(t *testing.T) {
	assert.Equal(t, GenerateKey("same input"), GenerateKey("same input"))
	assert.NotEqual(t, GenerateKey("input a"), GenerateKey("input b"))
	// Hex md5 keys are always 32 chars, safe for prefix logging.
	assert.Len(t, GenerateKey(""), 32)
}

func TestCacheDeleteAndClear(t *testing.T) {
	c := NewCache(time.Minute)

	c.Set("a", []byte("1"))
	c.Set("b", []byte("2"))
	require.Equal(t, 2, c.Size())

	c.Delete("a")
	assert.Equal(t, 1, c.Size())

	c.Clear()
	assert.Zero(t, c.Size())
}

func TestCacheStats(t *testing.T) {
	c := NewCache(time.Minute)
	c.Set("a", []byte("1"))

	stats := c.Stats()
	assert.Equal(t, 1, stats["total_items"])
	assert.Equal(t, 1, stats["active_items"])
	assert.Equal(t, 60.0, stats["ttl_seconds"])
}
