//go:build e2e

package portal_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"booking-portal/internal/domain/booking"
	"booking-portal/internal/domain/resource"
	"booking-portal/internal/domain/user"
	"booking-portal/internal/infra/backend"
	"booking-portal/internal/pkg/cookie"
	"booking-portal/internal/usecase"
	"booking-portal/internal/view"
	"booking-portal/tests/common/authtest"
	"booking-portal/tests/common/builder"
	"booking-portal/tests/common/httptest"
	"booking-portal/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL      = "/login"
	logoutURL     = "/logout"
	catalogURL    = "/resources"
	dashboardURL  = "/dashboard"
	myBookingsURL = "/my-bookings"

	backendLogin     = "POST /auth/login"
	backendResources = "GET /resources/"
	backendMine      = "GET /bookings/customer"
)

type portalSuite struct {
	e2e.SharedSuite
	customer user.User
	token    string
}

func TestPortalSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(portalSuite))
}

func (s *portalSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.customer = builder.NewUserBuilder().BuildTokenUser()
	s.token = authtest.IssueToken(s.T(), s.customer)
}

func (s *portalSuite) marshal(v any) string {
	b, err := json.Marshal(v)
	require.NoError(s.T(), err)
	return string(b)
}

// login signs in through the portal and returns the cookies it set.
func (s *portalSuite) login() []*http.Cookie {
	s.Backend.Handle(backendLogin, e2e.JSON(http.StatusOK,
		`{"access_token":"`+s.token+`","token_type":"bearer"}`))

	rec := httptest.PerformForm(s.T(), s.Router, http.MethodPost, loginURL, builder.NewAuthBuilder().BuildLoginForm(), nil)
	httptest.AssertRedirect(s.T(), rec, catalogURL)

	cookies := httptest.ExtractCookies(rec)
	require.NotNil(s.T(), httptest.ExtractCookie(rec, cookie.TokenCookieName), "token cookie missing")
	return cookies
}

func (s *portalSuite) TestSignInBrowseSignOut() {
	s.Run("signed-in browsing sends the bearer token", func() {
		cookies := s.login()
		res := builder.NewResourceBuilder().Build()
		s.Backend.Handle(backendResources, e2e.JSON(http.StatusOK, s.marshal([]resource.Resource{res})))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, catalogURL, nil, cookies)

		var list view.ResourceList
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &list)
		s.Require().Len(list.Items, 1)
		s.Equal(res.Name, list.Items[0].Name)
		s.True(list.Capabilities.ShowBookingAction)
		s.Equal("Bearer "+s.token, s.Backend.AuthorizationFor(backendResources))
	})

	s.Run("my bookings are loaded for the customer", func() {
		cookies := s.login()
		b := builder.NewResourceBuilder().BuildBooking(booking.StatusConfirmed)
		s.Backend.Handle(backendMine, e2e.JSON(http.StatusOK, s.marshal([]booking.Booking{b})))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, myBookingsURL, nil, cookies)

		var page usecase.BookingsPage
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &page)
		s.Equal(view.StatusSuccess, page.Bookings.Status)
		s.Require().Len(page.Bookings.Data, 1)
		s.Equal(b.ID, page.Bookings.Data[0].ID)
	})

	s.Run("logout clears the session and guarded pages bounce to login", func() {
		cookies := s.login()

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, cookies)
		httptest.AssertRedirect(s.T(), rec, loginURL)
		for _, ck := range httptest.ExtractCookies(rec) {
			s.Negative(ck.MaxAge, "cookie %s must be cleared", ck.Name)
		}

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, dashboardURL, nil, nil)
		httptest.AssertRedirect(s.T(), rec, loginURL)
	})
}

func (s *portalSuite) TestAnonymousBrowsing() {
	s.Run("catalog is public and sent without a token", func() {
		s.Backend.Handle(backendResources, e2e.JSON(http.StatusOK, `[]`))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, catalogURL, nil, nil)

		var list view.ResourceList
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &list)
		s.True(list.Empty)
		s.Empty(s.Backend.AuthorizationFor(backendResources))
	})
}

func (s *portalSuite) TestLoginFailures() {
	tests := []struct {
		name           string
		status         int
		body           string
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "wrong credentials keep the backend message",
			status:         http.StatusUnauthorized,
			body:           `{"detail":"Incorrect email or password"}`,
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "Incorrect email or password",
		},
		{
			name:           "backend crash becomes a bad gateway",
			status:         http.StatusInternalServerError,
			body:           `{}`,
			expectedStatus: http.StatusBadGateway,
			expectedMsg:    backend.MessageUnknown,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.Backend.Handle(backendLogin, e2e.JSON(tt.status, tt.body))

			rec := httptest.PerformForm(s.T(), s.Router, http.MethodPost, loginURL, builder.NewAuthBuilder().BuildLoginForm(), nil)

			httptest.AssertErrorResponse(s.T(), rec, tt.expectedStatus, tt.expectedMsg)
			s.Nil(httptest.ExtractCookie(rec, cookie.TokenCookieName))
		})
	}
}
