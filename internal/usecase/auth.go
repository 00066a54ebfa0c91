package usecase

import (
	"context"
	"errors"
	"strings"

	"booking-portal/internal/domain/user"
	reqdto "booking-portal/internal/handler/dto/request"
	"booking-portal/internal/infra/backend"
	"booking-portal/internal/session"
	"booking-portal/internal/view"
)

const (
	PathLogin     = "/login"
	PathDashboard = "/dashboard"
	PathResources = "/resources"
)

// LoginOutcome is the session to store and where to send the user next.
type LoginOutcome struct {
	Session  session.Session
	Redirect string
}

type AuthUseCase interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginOutcome, error)
	Register(ctx context.Context, req reqdto.RegisterRequest) error
}

type authUseCaseImpl struct {
	api backend.API
}

func NewAuthUseCase(api backend.API) AuthUseCase {
	return &authUseCaseImpl{api: api}
}

func (a *authUseCaseImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginOutcome, error) {
	result, err := a.api.Login(ctx, strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		return nil, err
	}

	u := result.User
	return &LoginOutcome{
		Session:  session.Session{Token: result.Token, User: &u},
		Redirect: LandingPath(u.Role),
	}, nil
}

// LandingPath is where a freshly signed-in user goes: customers browse the
// catalog, everyone else gets the dashboard.
func LandingPath(role user.Role) string {
	if role == user.RoleCustomer {
		return PathResources
	}
	return PathDashboard
}

// Register returns a *view.FormError for anything the user can fix.
func (a *authUseCaseImpl) Register(ctx context.Context, req reqdto.RegisterRequest) error {
	reg, err := req.ToDomain()
	if err != nil {
		field, msg := registrationFieldError(err)
		return view.RegisterFields.Field(field, msg, err)
	}

	if _, err := a.api.Register(ctx, reg); err != nil {
		return view.RegisterFields.Backend(err)
	}
	return nil
}

func registrationFieldError(err error) (field, msg string) {
	switch {
	case errors.Is(err, user.ErrPasswordMismatch):
		return "confirm_password", "Passwords do not match."
	case errors.Is(err, user.ErrPasswordTooWeak):
		return "password", "Password must be at least 8 characters long."
	case errors.Is(err, user.ErrInvalidEmail):
		return "email", "Enter a valid email address."
	case errors.Is(err, user.ErrInvalidRole):
		return "role", "Choose CUSTOMER or BUSINESS_OWNER."
	default:
		return "", view.GeneralFormMessage
	}
}
