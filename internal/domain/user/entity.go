package user

import "strings"

// User is the identity the portal derives from an access token or receives
// from the backend. It is never persisted here.
type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Role        Role   `json:"role"`
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

func (u User) IsBusinessOwner() bool { return u.Role == RoleBusinessOwner }
func (u User) IsCustomer() bool      { return u.Role == RoleCustomer }

func (u User) DisplayName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Email
	}
	return name
}

// Registration is the payload sent to POST /auth/register.
type Registration struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Role        Role   `json:"role"`
}

func NewRegistration(firstName, lastName, phone string, email Email, password Password, role Role) (Registration, error) {
	if !role.IsValid() {
		return Registration{}, ErrInvalidRole
	}
	return Registration{
		FirstName:   strings.TrimSpace(firstName),
		LastName:    strings.TrimSpace(lastName),
		PhoneNumber: strings.TrimSpace(phone),
		Email:       email.Value(),
		Password:    password.Value(),
		Role:        role,
	}, nil
}
