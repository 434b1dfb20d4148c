package dltoken

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundtrip(t *testing.T) {
	tok, err := New("secret", "abc123", "docs/r.pdf", "deadbeef", time.Minute)
	require.NoError(t, err)
	claims, err := Verify("secret", tok)
	require.NoError(t, err)
	assert.Equal(t, "abc123", claims.ComponentId)
	assert.Equal(t, "docs/r.pdf", claims.Path)
	assert.Equal(t, "deadbeef", claims.Sha)
}

func TestTokenWrongSecret(t *testing.T) {
	tok, err := New("secret", "abc123", "a", "b", time.Minute)
	require.NoError(t, err)
	_, err = Verify("other", tok)
	assert.Error(t, err)
}

func TestTokenExpired(t *testing.T) {
	tok, err := New("secret", "abc123", "a", "b", -time.Minute)
	require.NoError(t, err)
	_, err = Verify("secret", tok)
	assert.Error(t, err)
}

func TestTokenGarbage(t *testing.T) {
	_, err := Verify("secret", "not-a-token")
	assert.Error(t, err)
}
