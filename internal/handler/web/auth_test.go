//go:build unit

package web_test

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"booking-portal/internal/domain/user"
	resdto "booking-portal/internal/handler/dto/response"
	"booking-portal/internal/handler/middleware"
	"booking-portal/internal/infra/backend"
	"booking-portal/internal/pkg/cookie"
	"booking-portal/tests/common/builder"
	"booking-portal/tests/common/httptest"
	"booking-portal/tests/common/testutil"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	portalSuite
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	path := "/login"

	s.Run("success: customer is sent to the catalog with both cookies set", func() {
		s.mockAPI.EXPECT().Login(gomock.Any(), "test@example.com", "password123").
			Return(backend.LoginResult{Token: "tok", User: s.customer}, nil)

		rec := httptest.PerformForm(s.T(), s.router, http.MethodPost, path, builder.NewAuthBuilder().BuildLoginForm(), nil)

		httptest.AssertRedirect(s.T(), rec, "/resources")
		names := []string{}
		for _, ck := range httptest.ExtractCookies(rec) {
			names = append(names, ck.Name)
		}
		s.ElementsMatch([]string{cookie.TokenCookieName, cookie.UserInfoCookieName}, names)
	})

	s.Run("success: owner is sent to the dashboard", func() {
		s.mockAPI.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(backend.LoginResult{Token: "tok", User: s.owner}, nil)

		rec := httptest.PerformForm(s.T(), s.router, http.MethodPost, path, builder.NewAuthBuilder().BuildLoginForm(), nil)

		httptest.AssertRedirect(s.T(), rec, "/dashboard")
	})

	s.Run("error: 422 with field messages on invalid input", func() {
		testCases := []struct {
			name   string
			form   url.Values
			fields map[string]string
		}{
			{
				name:   "missing email",
				form:   url.Values{"password": {"password123"}},
				fields: map[string]string{"email": "This field is required."},
			},
			{
				name:   "malformed email",
				form:   url.Values{"email": {"nope"}, "password": {"password123"}},
				fields: map[string]string{"email": "Enter a valid email address."},
			},
			{
				name:   "missing password",
				form:   url.Values{"email": {"test@example.com"}},
				fields: map[string]string{"password": "This field is required."},
			},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformForm(s.T(), s.router, http.MethodPost, path, tc.form, nil)
				httptest.AssertFieldErrors(s.T(), rec, http.StatusUnprocessableEntity, tc.fields)
			})
		}
	})

	s.Run("error: maps backend failures to proper statuses", func() {
		testCases := []struct {
			name       string
			err        error
			expectCode int
			expectMsg  string
		}{
			{name: "bad credentials", err: &backend.RequestError{Status: http.StatusUnauthorized, Message: "Incorrect email or password"}, expectCode: http.StatusUnauthorized, expectMsg: "Incorrect email or password"},
			{name: "backend down", err: &backend.RequestError{Message: backend.MessageUnreachable}, expectCode: http.StatusBadGateway, expectMsg: backend.MessageUnreachable},
			{name: "backend crash", err: &backend.RequestError{Status: http.StatusInternalServerError, Message: backend.MessageUnknown}, expectCode: http.StatusBadGateway, expectMsg: backend.MessageUnknown},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockAPI.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(backend.LoginResult{}, tc.err)

				rec := httptest.PerformForm(s.T(), s.router, http.MethodPost, path, builder.NewAuthBuilder().BuildLoginForm(), nil)

				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
				s.Empty(httptest.ExtractCookies(rec))
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestLoginJSON() {
	path := "/login"
	reqBody := builder.NewAuthBuilder().BuildLoginDTO()

	testCases := []struct {
		name       string
		mutate     func(map[string]any)
		expectCode int
	}{
		{name: "valid body", mutate: testutil.Field("email", "valid@example.com"), expectCode: http.StatusSeeOther},
		{name: "invalid email", mutate: testutil.Field("email", "invalid-email"), expectCode: http.StatusUnprocessableEntity},
		{name: "missing email", mutate: testutil.Field("email", nil), expectCode: http.StatusUnprocessableEntity},
		{name: "missing password", mutate: testutil.Field("password", nil), expectCode: http.StatusUnprocessableEntity},
		{name: "empty password", mutate: testutil.Field("password", ""), expectCode: http.StatusUnprocessableEntity},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			if tc.expectCode == http.StatusSeeOther {
				s.mockAPI.EXPECT().Login(gomock.Any(), "valid@example.com", reqBody.Password).
					Return(backend.LoginResult{Token: "tok", User: s.customer}, nil)
			}

			requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, requestMap, nil)

			s.Equal(tc.expectCode, rec.Code, rec.Body.String())
		})
	}
}

func (s *AuthHandlerTestSuite) TestLoginForm() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/login", nil, nil)

	var page resdto.FormPage
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &page)
	s.Nil(page.Errors)
}

func (s *AuthHandlerTestSuite) TestRegister() {
	path := "/register"
	form := func(mutate func(*builder.AuthBuilder)) url.Values {
		dto := builder.NewAuthBuilder().With(mutate).BuildRegisterDTO()
		return url.Values{
			"first_name":       {dto.FirstName},
			"last_name":        {dto.LastName},
			"phone_number":     {dto.PhoneNumber},
			"email":            {dto.Email},
			"password":         {dto.Password},
			"confirm_password": {dto.ConfirmPassword},
			"role":             {dto.Role},
		}
	}
	noop := func(*builder.AuthBuilder) {}

	s.Run("success: redirects to login", func() {
		s.mockAPI.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(user.User{ID: "7", Email: "test@example.com", Role: user.RoleCustomer}, nil)

		rec := httptest.PerformForm(s.T(), s.router, http.MethodPost, path, form(noop), nil)

		httptest.AssertRedirect(s.T(), rec, "/login")
	})

	s.Run("error: mismatched confirmation never reaches the backend", func() {
		rec := httptest.PerformForm(s.T(), s.router, http.MethodPost, path,
			form(func(a *builder.AuthBuilder) { a.ConfirmPassword = "different1" }), nil)

		httptest.AssertFieldErrors(s.T(), rec, http.StatusUnprocessableEntity,
			map[string]string{"confirm_password": "Passwords do not match."})
	})

	s.Run("error: unknown role is rejected by binding", func() {
		rec := httptest.PerformForm(s.T(), s.router, http.MethodPost, path,
			form(func(a *builder.AuthBuilder) { a.Role = "ADMIN" }), nil)

		httptest.AssertFieldErrors(s.T(), rec, http.StatusUnprocessableEntity,
			map[string]string{"role": "Must be one of: CUSTOMER, BUSINESS_OWNER."})
	})

	s.Run("error: backend validation detail lands on the fields", func() {
		detail := json.RawMessage(`[{"loc":["body","email"],"msg":"Email already registered","type":"value_error"}]`)
		s.mockAPI.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(user.User{}, &backend.RequestError{Status: http.StatusUnprocessableEntity, Message: "Email already registered", Detail: detail})

		rec := httptest.PerformForm(s.T(), s.router, http.MethodPost, path, form(noop), nil)

		httptest.AssertFieldErrors(s.T(), rec, http.StatusUnprocessableEntity,
			map[string]string{"email": "Email already registered"})
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/logout", nil, s.signedIn(s.customer))

	httptest.AssertRedirect(s.T(), rec, "/login")
	cookies := httptest.ExtractCookies(rec)
	s.Len(cookies, 2)
	for _, ck := range cookies {
		s.Negative(ck.MaxAge, "cookie %s must be cleared", ck.Name)
	}
}

func (s *AuthHandlerTestSuite) TestSession() {
	s.Run("anonymous", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/session", nil, nil)

		var resp resdto.SessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Content-Type": "application/json; charset=utf-8"})
		s.False(resp.Authenticated)
		httptest.AssertHeadersPresent(s.T(), rec, middleware.RequestIDHeader)
	})

	s.Run("signed in", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/session", nil, s.signedIn(s.owner))

		var resp resdto.SessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.True(resp.Authenticated)
		s.Require().NotNil(resp.User)
		s.Equal(user.RoleBusinessOwner, resp.User.Role)
	})
}

func (s *AuthHandlerTestSuite) TestUnmatchedPath() {
	s.Run("anonymous goes to login", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/nowhere", nil, nil)
		httptest.AssertRedirect(s.T(), rec, "/login")
	})

	s.Run("signed in goes to the dashboard", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/nowhere", nil, s.signedIn(s.customer))
		httptest.AssertRedirect(s.T(), rec, "/dashboard")
	})
}
