package tcache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTCacheRegisterGet(t *testing.T) {
	tc := NewTCache(time.Minute)
	tc.Register("k", "v", 0)
	v, ok := tc.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)
	_, ok = tc.Get("missing")
	assert.False(t, ok)
}

func TestTCacheExpiry(t *testing.T) {
	tc := NewTCache(time.Minute)
	tc.Register("k", "v", time.Nanosecond)
	time.Sleep(time.Millisecond)
	_, ok := tc.Get("k")
	assert.False(t, ok)
}

func TestTCacheDelete(t *testing.T) {
	tc := NewTCache(time.Minute)
	tc.Register("k", "v", 0)
	tc.Delete("k")
	_, ok := tc.Get("k")
	assert.False(t, ok)
}

func TestTCacheOverwrite(t *testing.T) {
	tc := NewTCache(time.Minute)
	tc.Register("k", "v1", 0)
	tc.Register("k", "v2", 0)
	v, _ := tc.Get("k")
	assert.Equal(t, "v2", v)
}
