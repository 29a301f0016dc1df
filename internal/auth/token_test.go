package auth_test

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/gradebook-console/internal/auth"
)

func signedToken(t *testing.T, roles []string, expiresAt *time.Time) string {
	t.Helper()

	claims := jwt.MapClaims{"sub": "jdoe"}
	if roles != nil {
		claims["roles"] = roles
	}
	if expiresAt != nil {
		claims["exp"] = expiresAt.Unix()
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestDecodeClaims(t *testing.T) {
	t.Run("reads roles without verifying the signature", func(t *testing.T) {
		exp := time.Now().Add(time.Hour)
		token := signedToken(t, []string{"ROLE_ADMIN", "ROLE_TEACHER"}, &exp)

		claims, err := auth.DecodeClaims(token)
		require.NoError(t, err)
		assert.Equal(t, []string{"ROLE_ADMIN", "ROLE_TEACHER"}, claims.Roles)
		assert.Equal(t, "jdoe", claims.Subject)
	})

	t.Run("malformed token", func(t *testing.T) {
		for _, token := range []string{"", "not-a-jwt", "a.b", "x.y.z"} {
			_, err := auth.DecodeClaims(token)
			assert.ErrorIs(t, err, auth.ErrInvalidToken, "token %q", token)
		}
	})
}

func TestClaims_ExpiresAfter(t *testing.T) {
	now := time.Now()

	t.Run("future expiry", func(t *testing.T) {
		exp := now.Add(time.Hour)
		claims, err := auth.DecodeClaims(signedToken(t, nil, &exp))
		require.NoError(t, err)
		assert.True(t, claims.ExpiresAfter(now))
	})

	t.Run("past expiry", func(t *testing.T) {
		exp := now.Add(-time.Hour)
		claims, err := auth.DecodeClaims(signedToken(t, nil, &exp))
		require.NoError(t, err)
		assert.False(t, claims.ExpiresAfter(now))
	})

	t.Run("missing expiry counts as expired", func(t *testing.T) {
		claims, err := auth.DecodeClaims(signedToken(t, nil, nil))
		require.NoError(t, err)
		assert.False(t, claims.ExpiresAfter(now))
	})
}
