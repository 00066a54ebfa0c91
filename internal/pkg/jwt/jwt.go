package jwt

import (
	"errors"
	"strings"

	"booking-portal/internal/domain/user"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims mirrors the payload the booking backend puts in access tokens.
type Claims struct {
	Email     string `json:"email"`
	Role      string `json:"role"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	jwt.RegisteredClaims
}

// Decode reads the token payload without checking the signature.
// Signature and expiry are enforced by the backend on every call.
func Decode(tokenString string) (*Claims, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return nil, ErrInvalidToken
	}

	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// User maps the claims onto the identity the portal works with. The role is
// taken as-is; callers decide how to treat unknown roles.
func (c *Claims) User() user.User {
	return user.User{
		ID:        c.Subject,
		Email:     c.Email,
		Role:      user.Role(c.Role),
		FirstName: c.FirstName,
		LastName:  c.LastName,
	}
}

// DecodeUser is Decode followed by User.
func DecodeUser(tokenString string) (user.User, error) {
	claims, err := Decode(tokenString)
	if err != nil {
		return user.User{}, err
	}
	return claims.User(), nil
}
