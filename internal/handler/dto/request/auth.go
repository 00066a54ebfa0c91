package request

import (
	"strings"

	"booking-portal/internal/domain/user"
)

type LoginRequest struct {
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required"`
}

type RegisterRequest struct {
	FirstName       string `form:"first_name" json:"first_name" binding:"required"`
	LastName        string `form:"last_name" json:"last_name" binding:"required"`
	PhoneNumber     string `form:"phone_number" json:"phone_number" binding:"required"`
	Email           string `form:"email" json:"email" binding:"required,email"`
	Password        string `form:"password" json:"password" binding:"required"`
	ConfirmPassword string `form:"confirm_password" json:"confirm_password" binding:"required"`
	Role            string `form:"role" json:"role" binding:"required,oneof=CUSTOMER BUSINESS_OWNER"`
}

// ToDomain checks the confirmation before anything else, the way the form
// reports it first.
func (r RegisterRequest) ToDomain() (user.Registration, error) {
	password, err := user.NewConfirmedPassword(r.Password, r.ConfirmPassword)
	if err != nil {
		return user.Registration{}, err
	}
	email, err := user.NewEmail(r.Email)
	if err != nil {
		return user.Registration{}, err
	}
	role, err := user.NewRole(strings.TrimSpace(r.Role))
	if err != nil {
		return user.Registration{}, err
	}
	return user.NewRegistration(r.FirstName, r.LastName, r.PhoneNumber, email, password, role)
}
