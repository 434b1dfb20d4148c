package routes

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterAllowsWithinLimit(t *testing.T) {
	rl := NewRateLimiter(100)
	assert.True(t, rl.IsIPAllowed("192.0.2.1"))
}

func TestRateLimiterBlocksBurst(t *testing.T) {
	rl := NewRateLimiter(1)
	assert.True(t, rl.IsIPAllowed("192.0.2.2"))
	// burst capacity is 1, so an immediate second request is denied.
	assert.False(t, rl.IsIPAllowed("192.0.2.2"))
	// a different ip keeps its own bucket.
	assert.True(t, rl.IsIPAllowed("192.0.2.3"))
}

func TestRateLimiterDisabledAtZero(t *testing.T) {
	rl := NewRateLimiter(0)
	for range 20 {
		assert.True(t, rl.IsIPAllowed("192.0.2.4"))
	}
}

func TestResolveMostPossibleIP(t *testing.T) {
	w := httptest.NewRecorder()

	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "192.0.2.10:4321"
	assert.Equal(t, "192.0.2.10", ResolveMostPossibleIP(w, r))

	r = httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "192.0.2.10:4321"
	r.Header.Set("X-Real-IP", "198.51.100.7")
	assert.Equal(t, "198.51.100.7", ResolveMostPossibleIP(w, r))

	r = httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "192.0.2.10:4321"
	r.Header.Set("X-Forwarded-For", "garbage, 203.0.113.9")
	assert.Equal(t, "203.0.113.9", ResolveMostPossibleIP(w, r))
}
