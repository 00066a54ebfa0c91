package backend

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"booking-portal/internal/domain/user"
	"booking-portal/internal/pkg/errs"
	"booking-portal/internal/pkg/jwt"
	"booking-portal/internal/pkg/ptr"
)

// LoginResult carries the issued token and the identity it belongs to.
type LoginResult struct {
	Token string
	User  user.User
}

type loginResponse struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	User        *userOut `json:"user"`
}

type userOut struct {
	UserID      string    `json:"user_id"`
	Email       string    `json:"email"`
	Role        user.Role `json:"role"`
	FirstName   *string   `json:"first_name"`
	LastName    *string   `json:"last_name"`
	PhoneNumber *string   `json:"phone_number"`
}

func (u userOut) toUser() user.User {
	return user.User{
		ID:          u.UserID,
		Email:       u.Email,
		Role:        u.Role,
		FirstName:   ptr.Deref(u.FirstName),
		LastName:    ptr.Deref(u.LastName),
		PhoneNumber: ptr.Deref(u.PhoneNumber),
	}
}

// Login posts password-grant credentials as a form. It skips the JSON
// defaults of Request but still sends the tunnel header.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	headers := http.Header{}
	headers.Set("Content-Type", contentTypeForm)
	headers.Set(TunnelBypassHeader, "true")

	raw, err := c.send(ctx, http.MethodPost, "/auth/login", strings.NewReader(form.Encode()), headers)
	resp, err := decodeInto[loginResponse](raw, err)
	if err != nil {
		return LoginResult{}, err
	}
	if resp.AccessToken == "" {
		return LoginResult{}, newMalformedError(http.StatusOK, errs.New("login response without access_token"))
	}

	result := LoginResult{Token: resp.AccessToken}
	if resp.User != nil {
		result.User = resp.User.toUser()
		return result, nil
	}
	u, err := jwt.DecodeUser(resp.AccessToken)
	if err != nil {
		return LoginResult{}, newMalformedError(http.StatusOK, errs.Wrap(err, "decode issued token"))
	}
	result.User = u
	return result, nil
}

func (c *Client) Register(ctx context.Context, reg user.Registration) (user.User, error) {
	raw, err := c.Request(ctx, "/auth/register", RequestOptions{Method: http.MethodPost, Body: reg})
	out, err := decodeInto[userOut](raw, err)
	if err != nil {
		return user.User{}, err
	}
	return out.toUser(), nil
}
