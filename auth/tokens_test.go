package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserTokenRoundTrip(t *testing.T) {
	secret := "test-secret"

	token, err := IssueUserToken(secret, "user-123")
	require.NoError(t, err)

	claims, err := ParseToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims["id"])
	assert.Equal(t, RoleUser, claims["role"])
}

func TestSellerTokenRoundTrip(t *testing.T) {
	secret := "test-secret"

	token, err := IssueSellerToken(secret, "seller@freshkart.dev")
	require.NoError(t, err)

	claims, err := ParseToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "seller@freshkart.dev", claims["email"])
	assert.Equal(t, RoleSeller, claims["role"])
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := IssueUserToken("secret-a", "user-123")
	require.NoError(t, err)

	_, err = ParseToken("secret-b", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := ParseToken("secret", "not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
