package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTMaker_GenerateAndParseAccessToken_ValidCases(t *testing.T) {
	secretKey := "test_secret_key_1234567890"
	accessTTL := 30 * time.Minute
	refreshTTL := 720 * time.Hour
	maker := NewJWTMaker(secretKey, accessTTL, refreshTTL)

	tests := []struct {
		name     string
		username string
	}{
		{
			name:     "regular user",
			username: "regular_user",
		},
		{
			name:     "user with email username",
			username: "user@domain.com",
		},
		{
			name:     "user with numbers in username",
			username: "user123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := maker.GenerateAccessToken(tt.username)
			require.NoError(t, err)
			assert.NotEmpty(t, token)

			claims, err := maker.ParseToken(token)
			require.NoError(t, err)

			assert.Equal(t, tt.username, claims.Username)
			assert.Equal(t, tt.username, claims.Subject)
			assert.Equal(t, TokenTypeAccess, claims.TokenType)
			assert.NotEmpty(t, claims.ID)
			assert.WithinDuration(t, time.Now(), claims.IssuedAt.Time, time.Second)
			assert.WithinDuration(t, time.Now().Add(accessTTL), claims.ExpiresAt.Time, time.Second)
		})
	}
}

func TestJWTMaker_RefreshToken(t *testing.T) {
	maker := NewJWTMaker("test_secret_key", 30*time.Minute, 720*time.Hour)

	token, err := maker.GenerateRefreshToken("testuser")
	require.NoError(t, err)

	claims, err := maker.ParseToken(token)
	require.NoError(t, err)

	assert.Equal(t, TokenTypeRefresh, claims.TokenType)
	assert.Equal(t, "testuser", claims.Username)
	assert.WithinDuration(t, time.Now().Add(720*time.Hour), claims.ExpiresAt.Time, time.Second)
}

func TestJWTMaker_UniqueTokenIDs(t *testing.T) {
	maker := NewJWTMaker("test_secret_key", 30*time.Minute, 720*time.Hour)

	first, err := maker.GenerateAccessToken("testuser")
	require.NoError(t, err)
	second, err := maker.GenerateAccessToken("testuser")
	require.NoError(t, err)

	firstClaims, err := maker.ParseToken(first)
	require.NoError(t, err)
	secondClaims, err := maker.ParseToken(second)
	require.NoError(t, err)

	assert.NotEqual(t, firstClaims.ID, secondClaims.ID)
}

func TestJWTMaker_ParseToken_InvalidTokens(t *testing.T) {
	secretKey := "test_secret_key_1234567890"
	maker := NewJWTMaker(secretKey, 30*time.Minute, 720*time.Hour)

	validToken, err := maker.GenerateAccessToken("testuser")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "empty token",
			token: "",
		},
		{
			name:  "malformed token",
			token: "invalid.token.here",
		},
		{
			name:  "expired token",
			token: createExpiredToken(t, secretKey),
		},
		{
			name:  "wrong secret key",
			token: createTokenWithWrongSecret(t),
		},
		{
			name:  "tampered token",
			token: validToken + "tampered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := maker.ParseToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestJWTMaker_DifferentSecretKeys(t *testing.T) {
	maker1 := NewJWTMaker("first_secret_key", 30*time.Minute, 720*time.Hour)
	maker2 := NewJWTMaker("different_secret_key", 30*time.Minute, 720*time.Hour)

	token, err := maker1.GenerateAccessToken("testuser")
	require.NoError(t, err)

	claims, err := maker2.ParseToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)

	claims, err = maker1.ParseToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
}

func createExpiredToken(t *testing.T, secretKey string) string {
	maker := NewJWTMaker(secretKey, -time.Hour, -time.Hour)
	token, err := maker.GenerateAccessToken("testuser")
	require.NoError(t, err)
	return token
}

func createTokenWithWrongSecret(t *testing.T) string {
	wrongMaker := NewJWTMaker("wrong_secret_key", 30*time.Minute, 720*time.Hour)
	token, err := wrongMaker.GenerateAccessToken("testuser")
	require.NoError(t, err)
	return token
}

func TestJWTMaker_TokenExpiration(t *testing.T) {
	secretKey := "test_secret_key"
	shortTTL := 100 * time.Millisecond
	maker := NewJWTMaker(secretKey, shortTTL, shortTTL)

	token, err := maker.GenerateAccessToken("testuser")
	require.NoError(t, err)

	claims, err := maker.ParseToken(token)
	require.NoError(t, err)
	assert.NotNil(t, claims)

	time.Sleep(150 * time.Millisecond)

	_, err = maker.ParseToken(token)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "expired")
}
