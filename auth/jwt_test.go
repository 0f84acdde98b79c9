package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/user/remainders-go/config"
)

func testAuthConfig() *config.AuthConfig {
	return &config.AuthConfig{
		JWTSecret:     "test-secret",
		TokenDuration: time.Hour,
	}
}

func TestGenerateAndParseToken(t *testing.T) {
	cfg := testAuthConfig()

	token, err := GenerateToken(42, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token, cfg)
	require.NoError(t, err)
	require.Equal(t, int64(42), claims.UserID)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(7, testAuthConfig())
	require.NoError(t, err)

	_, err = ParseToken(token, &config.AuthConfig{JWTSecret: "other-secret", TokenDuration: time.Hour})
	require.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	cfg := &config.AuthConfig{JWTSecret: "test-secret", TokenDuration: -time.Minute}

	token, err := GenerateToken(7, cfg)
	require.NoError(t, err)

	_, err = ParseToken(token, cfg)
	require.Error(t, err)
}

func TestParseTokenMalformed(t *testing.T) {
	_, err := ParseToken("not.a.jwt", testAuthConfig())
	require.Error(t, err)
}
