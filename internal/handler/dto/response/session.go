package response

import (
	"booking-portal/internal/domain/user"
	"booking-portal/internal/session"
)

// SessionResponse is the identity shown in page headers.
type SessionResponse struct {
	Authenticated bool       `json:"authenticated"`
	User          *user.User `json:"user,omitempty"`
}

func FromSession(s session.Session) SessionResponse {
	if !s.Authenticated() {
		return SessionResponse{}
	}
	u := *s.User
	return SessionResponse{Authenticated: true, User: &u}
}
