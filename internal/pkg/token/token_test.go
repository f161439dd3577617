package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	tok, err := GenerateToken("user-1", "user@example.com", "test-secret", 1)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := ValidateToken(tok, "test-secret")
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserID)
	require.Equal(t, "user@example.com", claims.Email)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	tok, err := GenerateToken("user-1", "user@example.com", "test-secret", 1)
	require.NoError(t, err)

	_, err = ValidateToken(tok, "other-secret")
	require.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not-a-token", "test-secret")
	require.Error(t, err)
}
