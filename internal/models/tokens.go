package models

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TokenSet is the access/refresh token pair issued by the backend on login
// and rotated on every refresh. Both values are opaque to the client.
type TokenSet struct {
	AccessToken  string
	RefreshToken string
	// UTC timestamp for when the access token expires, when known.
	// Derived from the access token's JWT claims, see WithDerivedExpiry.
	ExpiresAt time.Time
}

// IsZero reports whether no credentials are stored at all.
func (t TokenSet) IsZero() bool {
	return t.AccessToken == "" && t.RefreshToken == ""
}

func (t TokenSet) Expired() bool {
	if t.ExpiresAt.IsZero() {
		return false
	}
	return time.Now().UTC().After(t.ExpiresAt)
}

// ExpiresSoon reports whether the access token expires within the given margin.
// A token with an unknown expiry never expires soon.
func (t TokenSet) ExpiresSoon(margin time.Duration) bool {
	if t.ExpiresAt.IsZero() {
		return false
	}
	return time.Now().UTC().Add(margin).After(t.ExpiresAt)
}

// WithDerivedExpiry fills in ExpiresAt from the access token's "exp" claim
// when the token is a JWT. The signature is deliberately not verified, the
// client only inspects the expiry and the backend remains the verifier.
func (t TokenSet) WithDerivedExpiry() TokenSet {
	output := t
	if t.AccessToken == "" {
		return output
	}
	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	_, _, err := parser.ParseUnverified(t.AccessToken, &claims)
	if err != nil || claims.ExpiresAt == nil {
		// an opaque (non-JWT) access token is fine, the expiry stays unknown
		return output
	}
	output.ExpiresAt = claims.ExpiresAt.Time.UTC()
	return output
}

// String implements the Stringer interface for printing the token pair in logs
func (t TokenSet) String() string {
	return fmt.Sprintf(
		"TokenSet<AccessToken: redacted, RefreshToken: redacted, ExpiresAt: %s>",
		t.ExpiresAt,
	)
}
