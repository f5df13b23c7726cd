package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	tok, err := GenerateAccessToken(secret, 42, true)
	require.NoError(t, err)

	claims, err := ParseAndValidate(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.True(t, claims.IsAdmin)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	tok, err := GenerateAccessToken([]byte("secret-a"), 1, false)
	require.NoError(t, err)

	_, err = ParseAndValidate([]byte("secret-b"), tok)
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := ParseAndValidate([]byte("secret"), "not-a-token")
	assert.Error(t, err)
}
