package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", 60)

	token, exp, err := tm.GenerateToken("user-1", "jane.doe", true)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.False(t, exp.IsZero())

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserID)
	require.Equal(t, "jane.doe", claims.Handle)
	require.True(t, claims.IsStaff)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	tm := NewTokenManager("secret", 60)
	other := NewTokenManager("different", 60)

	token, _, err := tm.GenerateToken("user-1", "jane.doe", false)
	require.NoError(t, err)

	_, err = other.ParseToken(token)
	require.Error(t, err)

	_, err = tm.ParseToken("not-a-token")
	require.Error(t, err)
}
