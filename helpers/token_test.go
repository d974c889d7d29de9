package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	SetJWTKey("test-secret")

	token, err := GenerateToken("ana@example.com", "user-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
}

func TestValidateTokenWrongKey(t *testing.T) {
	SetJWTKey("first-secret")
	token, err := GenerateToken("ana@example.com", "user-1")
	require.NoError(t, err)

	SetJWTKey("second-secret")
	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	SetJWTKey("test-secret")
	_, err := ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hashed, err := HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hashed)

	assert.True(t, VerifyPassword(hashed, "hunter22"))
	assert.False(t, VerifyPassword(hashed, "hunter23"))
	assert.False(t, VerifyPassword("", "hunter22"))
}
