package token_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taalentio/talent-api/internal/shared/testutil"
	"github.com/taalentio/talent-api/internal/shared/token"
)

func TestJWTManager_AccessTokenRoundTrip(t *testing.T) {
	manager := token.NewJWTManager(testutil.NewTestConfig())

	signed, err := manager.GenerateAccessToken("42", "MAF0001CAS", "amina@example.com")
	require.NoError(t, err)

	claims, err := manager.ValidateToken(signed)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.TalentID)
	assert.Equal(t, "MAF0001CAS", claims.UniqueCode)
	assert.Equal(t, token.ACCESS, claims.TokenType)
}

func TestJWTManager_RefreshTokenType(t *testing.T) {
	manager := token.NewJWTManager(testutil.NewTestConfig())

	signed, err := manager.GenerateRefreshToken("42", "MAF0001CAS", "amina@example.com")
	require.NoError(t, err)

	claims, err := manager.ValidateToken(signed)
	require.NoError(t, err)
	assert.Equal(t, token.REFRESH, claims.TokenType)
}

func TestJWTManager_Expired(t *testing.T) {
	cfg := testutil.NewTestConfig()
	cfg.JWT.Expiry = -time.Minute
	manager := token.NewJWTManager(cfg)

	signed, err := manager.GenerateAccessToken("42", "MAF0001CAS", "amina@example.com")
	require.NoError(t, err)

	_, err = manager.ValidateToken(signed)
	assert.ErrorIs(t, err, token.ErrExpiredToken)
}

func TestJWTManager_WrongSecret(t *testing.T) {
	signed, err := token.NewJWTManager(testutil.NewTestConfig()).GenerateAccessToken("42", "MAF0001CAS", "a@example.com")
	require.NoError(t, err)

	other := testutil.NewTestConfig()
	other.JWT.Secret = "another-jwt-secret-key-that-is-32-characters-plus"

	_, err = token.NewJWTManager(other).ValidateToken(signed)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}
