package auth

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is the generic condition surfaced for any token that
// cannot be decoded. Low-level parse errors never reach callers directly.
var ErrInvalidToken = errors.New("invalid token")

// Claims describes the JWT payload issued by the backend. The client only
// reads claims; signature verification is the backend's responsibility.
type Claims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// DecodeClaims base64url-decodes the token's claims segment without
// verifying the signature. Malformed tokens yield ErrInvalidToken.
func DecodeClaims(token string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return claims, nil
}

// ExpiresAfter reports whether the token's expiry claim is strictly later
// than now. A missing expiry claim counts as expired.
func (c *Claims) ExpiresAfter(now time.Time) bool {
	if c.ExpiresAt == nil {
		return false
	}
	return c.ExpiresAt.After(now)
}
