//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"booking-portal/internal/domain/booking"
	"booking-portal/internal/infra/backend"
	"booking-portal/internal/pkg/errs"
	"booking-portal/internal/session"
	"booking-portal/internal/usecase"
	"booking-portal/internal/view"
	"booking-portal/tests/common/builder"
	mockbackend "booking-portal/tests/mock/backend"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DashboardUseCaseTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	mockAPI  *mockbackend.MockAPI
	uc       usecase.DashboardUseCase
}

func (s *DashboardUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockAPI = mockbackend.NewMockAPI(s.mockCtrl)
	s.uc = usecase.NewDashboardUseCase(s.mockAPI)
}

func (s *DashboardUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDashboardUseCaseSuite(t *testing.T) {
	suite.Run(t, new(DashboardUseCaseTestSuite))
}

func (s *DashboardUseCaseTestSuite) TestDashboard() {
	ctx := context.Background()

	s.Run("error: anonymous session", func() {
		page, err := s.uc.Dashboard(ctx, session.Session{})

		s.Nil(page)
		s.True(errs.Is(err, errs.ErrSessionRequired))
	})

	s.Run("success: customer gets browsing links only", func() {
		u := builder.NewUserBuilder().Build()

		page, err := s.uc.Dashboard(ctx, session.Session{Token: "tok", User: &u})

		s.Require().NoError(err)
		s.Equal("Deniz Kaya", page.DisplayName)
		s.Nil(page.OwnedBookings)
		s.Require().Len(page.Links, 2)
		s.Equal(usecase.PathResources, page.Links[0].Href)
	})

	s.Run("success: owner sees bookings on their resources", func() {
		u := builder.NewUserBuilder().AsOwner().Build()
		owned := []booking.Booking{builder.NewResourceBuilder().BuildBooking(booking.StatusConfirmed)}
		s.mockAPI.EXPECT().ListOwnedBookings(gomock.Any()).Return(owned, nil)

		page, err := s.uc.Dashboard(ctx, session.Session{Token: "tok", User: &u})

		s.Require().NoError(err)
		s.Require().NotNil(page.OwnedBookings)
		s.Equal(view.StatusSuccess, page.OwnedBookings.Status)
		s.Equal(owned, page.OwnedBookings.Data)
	})

	s.Run("success: owned bookings failure does not fail the page", func() {
		u := builder.NewUserBuilder().AsOwner().Build()
		s.mockAPI.EXPECT().ListOwnedBookings(gomock.Any()).
			Return(nil, &backend.RequestError{Message: backend.MessageUnreachable})

		page, err := s.uc.Dashboard(ctx, session.Session{Token: "tok", User: &u})

		s.Require().NoError(err)
		s.Equal(view.StatusError, page.OwnedBookings.Status)
		s.Equal(backend.MessageUnreachable, page.OwnedBookings.Error)
	})
}
