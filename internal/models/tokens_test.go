package models

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedAccessToken(t *testing.T, expiresAt time.Time) string {
	claims := jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	value, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return value
}

func TestWithDerivedExpiry(t *testing.T) {
	expiresAt := time.Now().Add(time.Hour).Truncate(time.Second)
	tokens := TokenSet{
		AccessToken:  signedAccessToken(t, expiresAt),
		RefreshToken: "refresh-value",
	}

	tokens = tokens.WithDerivedExpiry()

	assert.Equal(t, expiresAt.UTC(), tokens.ExpiresAt)
	assert.False(t, tokens.Expired())
	assert.False(t, tokens.ExpiresSoon(time.Minute))
	assert.True(t, tokens.ExpiresSoon(2*time.Hour))
}

func TestWithDerivedExpiryOpaqueToken(t *testing.T) {
	tokens := TokenSet{AccessToken: "not-a-jwt", RefreshToken: "refresh-value"}

	tokens = tokens.WithDerivedExpiry()

	assert.True(t, tokens.ExpiresAt.IsZero())
	assert.False(t, tokens.Expired())
	assert.False(t, tokens.ExpiresSoon(time.Hour))
}

func TestExpired(t *testing.T) {
	tokens := TokenSet{
		AccessToken:  signedAccessToken(t, time.Now().Add(-time.Minute)),
		RefreshToken: "refresh-value",
	}.WithDerivedExpiry()

	assert.True(t, tokens.Expired())
	assert.True(t, tokens.ExpiresSoon(time.Minute))
}

func TestStringRedactsValues(t *testing.T) {
	tokens := TokenSet{AccessToken: "secret-access", RefreshToken: "secret-refresh"}

	printed := tokens.String()

	assert.NotContains(t, printed, "secret-access")
	assert.NotContains(t, printed, "secret-refresh")
}

func TestIsZero(t *testing.T) {
	assert.True(t, TokenSet{}.IsZero())
	assert.False(t, TokenSet{AccessToken: "a"}.IsZero())
	assert.False(t, TokenSet{RefreshToken: "r"}.IsZero())
}
