package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	InitJWT("unit-test-secret")

	token, err := GenerateAccessToken(7, "maria", "staff")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "maria", claims.Username)
	assert.Equal(t, "staff", claims.Role)
	assert.Equal(t, tokenIssuer, claims.Issuer)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	InitJWT("unit-test-secret")

	token, err := GenerateRefreshToken(7)
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Empty(t, claims.Username)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	InitJWT("unit-test-secret")
	token, err := GenerateAccessToken(7, "maria", "staff")
	require.NoError(t, err)

	InitJWT("another-secret")
	claims, err := ValidateToken(token)
	assert.Nil(t, claims)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	InitJWT("unit-test-secret")

	claims, err := ValidateToken("not.a.token")
	assert.Nil(t, claims)
	assert.Error(t, err)
}
