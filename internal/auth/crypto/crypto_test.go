package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hashed, err := HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hashed)

	assert.True(t, VerifyPassword("password123", hashed))
	assert.False(t, VerifyPassword("password124", hashed))
	assert.False(t, VerifyPassword("password123", "not-a-bcrypt-hash"))
}

func TestGenerateOpaqueToken(t *testing.T) {
	first, err := GenerateOpaqueToken()
	require.NoError(t, err)
	second, err := GenerateOpaqueToken()
	require.NoError(t, err)

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
	// 48 random bytes, raw URL-safe base64
	assert.Len(t, first, 64)
}

func TestHashToken(t *testing.T) {
	digest := HashToken("validtoken123")

	assert.Len(t, digest, 64)
	assert.Equal(t, digest, HashToken("validtoken123"))
	assert.NotEqual(t, digest, HashToken("validtoken124"))
}
