package session

import (
	"encoding/json"

	"booking-portal/internal/domain/user"
	"booking-portal/internal/pkg/jwt"
	"booking-portal/internal/pkg/patch"
)

// Session is the bearer token plus the identity it decodes to. The zero value
// means nobody is signed in.
type Session struct {
	Token string
	User  *user.User
}

func (s Session) Authenticated() bool {
	return s.Token != "" && s.User != nil
}

func (s Session) Role() user.Role {
	if s.User == nil {
		return ""
	}
	return s.User.Role
}

func (s Session) UserID() string {
	if s.User == nil {
		return ""
	}
	return s.User.ID
}

// Decode derives a session from a token without verifying its signature.
// Verification is the backend's job on every call.
func Decode(token string) (Session, error) {
	u, err := jwt.DecodeUser(token)
	if err != nil {
		return Session{}, err
	}
	return Session{Token: token, User: &u}, nil
}

// withProfile fills display fields from the stored user record when it
// belongs to the same user as the token.
func (s Session) withProfile(userInfo string) Session {
	if s.User == nil || userInfo == "" {
		return s
	}
	var stored user.User
	if err := json.Unmarshal([]byte(userInfo), &stored); err != nil || stored.ID != s.User.ID {
		return s
	}

	merged := *s.User
	merged.FirstName = patch.CoalesceString(merged.FirstName, stored.FirstName)
	merged.LastName = patch.CoalesceString(merged.LastName, stored.LastName)
	merged.PhoneNumber = patch.CoalesceString(merged.PhoneNumber, stored.PhoneNumber)
	s.User = &merged
	return s
}
