//go:build unit || e2e

package builder

import (
	"booking-portal/internal/domain/user"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID        string
	Email     string
	Role      user.Role
	FirstName string
	LastName  string
	Phone     string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:        uuid.NewString(),
		Email:     "customer@example.com",
		Role:      user.RoleCustomer,
		FirstName: "Deniz",
		LastName:  "Kaya",
		Phone:     "+905551112233",
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) Build() user.User {
	return user.User{
		ID:          u.ID,
		Email:       u.Email,
		Role:        u.Role,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		PhoneNumber: u.Phone,
	}
}

// BuildTokenUser is the identity as it decodes from an access token, which
// carries no profile fields.
func (u *UserBuilder) BuildTokenUser() user.User {
	return user.User{ID: u.ID, Email: u.Email, Role: u.Role}
}

// Fluent builder methods
func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role user.Role) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) AsOwner() *UserBuilder {
	u.Role = user.RoleBusinessOwner
	u.Email = "owner@example.com"
	return u
}
