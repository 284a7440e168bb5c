package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewToken(t *testing.T) {
	a, err := NewToken(32)
	require.NoError(t, err)
	assert.Len(t, a, 64) // hex doubles the byte count

	b, err := NewToken(32)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestCacheExpiry(t *testing.T) {
	c := NewCache()

	c.SetCache("k", 42, 50*time.Millisecond)
	v, ok := c.GetCache("k")
	require.True(t, ok)
	assert.Equal(t, 42, v)

	time.Sleep(60 * time.Millisecond)
	_, ok = c.GetCache("k")
	assert.False(t, ok)
}

func TestCacheDelete(t *testing.T) {
	c := NewCache()

	c.SetCache("k", "v", time.Minute)
	c.DeleteCache("k")
	_, ok := c.GetCache("k")
	assert.False(t, ok)

	c.DeleteCache("never-set") // no-op
}
