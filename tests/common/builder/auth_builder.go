//go:build unit || e2e

package builder

import (
	"net/url"

	reqdto "booking-portal/internal/handler/dto/request"
)

type AuthBuilder struct {
	FirstName       string
	LastName        string
	PhoneNumber     string
	Email           string
	Password        string
	ConfirmPassword string
	Role            string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		FirstName:       "Deniz",
		LastName:        "Kaya",
		PhoneNumber:     "+905551112233",
		Email:           "test@example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
		Role:            "CUSTOMER",
	}
}

func (a *AuthBuilder) With(mutate func(*AuthBuilder)) *AuthBuilder {
	mutate(a)
	return a
}

func (a *AuthBuilder) BuildLoginDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildLoginForm() url.Values {
	return url.Values{
		"email":    {a.Email},
		"password": {a.Password},
	}
}

func (a *AuthBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		FirstName:       a.FirstName,
		LastName:        a.LastName,
		PhoneNumber:     a.PhoneNumber,
		Email:           a.Email,
		Password:        a.Password,
		ConfirmPassword: a.ConfirmPassword,
		Role:            a.Role,
	}
}
