//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"booking-portal/internal/domain/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// backendSecret stands in for the backend's signing key, which the portal
// never knows.
const backendSecret = "backend-signing-key"

// IssueToken signs an access token shaped like the backend's.
func IssueToken(t *testing.T, u user.User) string {
	t.Helper()
	return issue(t, u, time.Now().Add(time.Hour))
}

func IssueExpiredToken(t *testing.T, u user.User) string {
	t.Helper()
	return issue(t, u, time.Now().Add(-time.Hour))
}

func issue(t *testing.T, u user.User, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":   u.ID,
		"email": u.Email,
		"role":  string(u.Role),
		"exp":   exp.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(backendSecret))
	require.NoError(t, err)
	return token
}
