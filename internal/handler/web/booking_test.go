//go:build unit

package web_test

import (
	"net/http"
	"net/url"
	"testing"

	"booking-portal/internal/domain/availability"
	"booking-portal/internal/domain/booking"
	"booking-portal/internal/domain/resource"
	"booking-portal/internal/infra/backend"
	"booking-portal/internal/usecase"
	"booking-portal/internal/view"
	"booking-portal/tests/common/builder"
	"booking-portal/tests/common/httptest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	portalSuite
	resources *builder.ResourceBuilder
	res       resource.Resource
	slots     []booking.Slot
}

func (s *BookingHandlerTestSuite) SetupTest() {
	s.portalSuite.SetupTest()
	s.resources = builder.NewResourceBuilder()
	s.res = s.resources.Build()
	s.slots = s.resources.BuildSlots("2025-06-02", 3)
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) slotForm(slot booking.Slot) url.Values {
	return url.Values{"start_time": {slot.StartTime}, "end_time": {slot.EndTime}}
}

func (s *BookingHandlerTestSuite) TestDetail() {
	path := "/resources/" + s.res.ID.String()

	s.Run("success: anonymous visitor sees slots and a login prompt", func() {
		s.mockAPI.EXPECT().GetResource(gomock.Any(), s.res.ID).Return(s.res, nil)
		s.mockAPI.EXPECT().AvailableSlots(gomock.Any(), s.res.ID, s.today, s.today).Return(s.slots, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, nil)

		var detail usecase.ResourceDetail
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &detail)
		s.Equal("2025-06-02", detail.Date)
		s.Len(detail.Slots.Data, 3)
		s.True(detail.CanQuote)
		s.False(detail.CanBook)
		s.True(detail.LoginRequired)
	})

	s.Run("success: selected slot is priced", func() {
		s.mockAPI.EXPECT().GetResource(gomock.Any(), s.res.ID).Return(s.res, nil)
		s.mockAPI.EXPECT().AvailableSlots(gomock.Any(), s.res.ID, gomock.Any(), gomock.Any()).Return(s.slots, nil)
		s.mockAPI.EXPECT().CalculatePrice(gomock.Any(), booking.NewPriceRequest(s.res.ID, s.slots[2])).
			Return(booking.PriceQuote{TotalPrice: 55.5}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path+"?date=2025-06-02&slot=2", nil, s.signedIn(s.customer))

		var detail usecase.ResourceDetail
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &detail)
		s.True(detail.CanBook)
		s.Require().NotNil(detail.Quote)
		s.InDelta(55.5, detail.Quote.Data.TotalPrice, 0.001)
	})

	s.Run("error: malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path+"?date=June", nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: negative slot index", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path+"?slot=-1", nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: unknown resource", func() {
		s.mockAPI.EXPECT().GetResource(gomock.Any(), s.res.ID).
			Return(resource.Resource{}, &backend.RequestError{Status: http.StatusNotFound, Message: "Resource not found"})
		s.mockAPI.EXPECT().AvailableSlots(gomock.Any(), s.res.ID, gomock.Any(), gomock.Any()).Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Resource not found")
	})
}

func (s *BookingHandlerTestSuite) TestQuote() {
	path := "/resources/" + s.res.ID.String() + "/price"

	s.Run("success", func() {
		s.mockAPI.EXPECT().CalculatePrice(gomock.Any(), booking.NewPriceRequest(s.res.ID, s.slots[0])).
			Return(booking.PriceQuote{TotalPrice: 20}, nil)

		rec := httptest.PerformForm(s.T(), s.router, http.MethodPost, path, s.slotForm(s.slots[0]), nil)

		var quote booking.PriceQuote
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &quote)
		s.InDelta(20.0, quote.TotalPrice, 0.001)
	})

	s.Run("error: no slot chosen", func() {
		rec := httptest.PerformForm(s.T(), s.router, http.MethodPost, path, url.Values{}, nil)

		httptest.AssertFieldErrors(s.T(), rec, http.StatusUnprocessableEntity,
			map[string]string{"start_time": "This field is required."})
	})
}

func (s *BookingHandlerTestSuite) TestBook() {
	path := "/resources/" + s.res.ID.String() + "/book"

	s.Run("error: anonymous booking goes to login", func() {
		rec := httptest.PerformForm(s.T(), s.router, http.MethodPost, path, s.slotForm(s.slots[0]), nil)
		httptest.AssertRedirect(s.T(), rec, "/login")
	})

	s.Run("success: redirects to my bookings", func() {
		s.mockAPI.EXPECT().AvailableSlots(gomock.Any(), s.res.ID, s.today, s.today).Return(s.slots, nil)
		s.mockAPI.EXPECT().CreateBooking(gomock.Any(), booking.NewRequest(s.res.ID, s.slots[1], "")).
			Return(s.resources.BuildBooking(booking.StatusPending), nil)

		rec := httptest.PerformForm(s.T(), s.router, http.MethodPost, path, s.slotForm(s.slots[1]), s.signedIn(s.customer))

		httptest.AssertRedirect(s.T(), rec, "/my-bookings")
	})

	s.Run("error: slot taken since the page loaded", func() {
		s.mockAPI.EXPECT().AvailableSlots(gomock.Any(), s.res.ID, gomock.Any(), gomock.Any()).Return(s.slots[:1], nil)

		rec := httptest.PerformForm(s.T(), s.router, http.MethodPost, path, s.slotForm(s.slots[2]), s.signedIn(s.customer))

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "no longer available")
	})
}

func (s *BookingHandlerTestSuite) TestMyBookings() {
	first := s.resources.BuildBooking(booking.StatusConfirmed)
	second := s.resources.BuildBooking(booking.StatusConfirmed)

	s.Run("error: guarded", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/my-bookings", nil, nil)
		httptest.AssertRedirect(s.T(), rec, "/login")
	})

	s.Run("success: list", func() {
		s.mockAPI.EXPECT().ListMyBookings(gomock.Any()).Return([]booking.Booking{first, second}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/my-bookings", nil, s.signedIn(s.customer))

		var page usecase.BookingsPage
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &page)
		s.Equal(view.StatusSuccess, page.Bookings.Status)
		s.Len(page.Bookings.Data, 2)
	})

	s.Run("success: cancel changes only that booking", func() {
		s.mockAPI.EXPECT().ListMyBookings(gomock.Any()).Return([]booking.Booking{first, second}, nil).Times(1)
		s.mockAPI.EXPECT().CancelBooking(gomock.Any(), second.ID).Return(booking.Booking{ID: second.ID, Status: booking.StatusCancelled}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/my-bookings/"+second.ID.String()+"/cancel", nil, s.signedIn(s.customer))

		var page usecase.BookingsPage
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &page)
		s.Require().Len(page.Bookings.Data, 2)
		s.Equal(booking.StatusConfirmed, page.Bookings.Data[0].Status)
		s.Equal(booking.StatusCancelled, page.Bookings.Data[1].Status)
	})
}

func (s *BookingHandlerTestSuite) TestBookingDetail() {
	b := s.resources.BuildBooking(booking.StatusConfirmed)
	path := "/my-bookings/" + b.ID.String()

	s.Run("error: guarded", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, nil)
		httptest.AssertRedirect(s.T(), rec, "/login")
	})

	s.Run("success: renders the booking", func() {
		s.mockAPI.EXPECT().GetBooking(gomock.Any(), b.ID).Return(b, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, s.signedIn(s.customer))

		var got booking.Booking
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal(b.ID, got.ID)
		s.Equal(booking.StatusConfirmed, got.Status)
	})

	s.Run("error: invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/my-bookings/not-a-uuid", nil, s.signedIn(s.customer))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: unknown booking keeps the backend status", func() {
		s.mockAPI.EXPECT().GetBooking(gomock.Any(), gomock.Any()).
			Return(booking.Booking{}, &backend.RequestError{Status: http.StatusNotFound, Message: "Booking not found"})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/my-bookings/"+uuid.NewString(), nil, s.signedIn(s.customer))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestDashboard() {
	s.Run("success: owner sees owned bookings", func() {
		s.mockAPI.EXPECT().ListOwnedBookings(gomock.Any()).
			Return([]booking.Booking{s.resources.BuildBooking(booking.StatusPending)}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/dashboard", nil, s.signedIn(s.owner))

		var page usecase.DashboardPage
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &page)
		s.Equal(s.owner.Email, page.DisplayName)
		s.Require().NotNil(page.OwnedBookings)
		s.Len(page.OwnedBookings.Data, 1)
	})

	s.Run("success: customer dashboard makes no backend call", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/dashboard", nil, s.signedIn(s.customer))

		var page usecase.DashboardPage
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &page)
		s.Nil(page.OwnedBookings)
	})
}

func (s *BookingHandlerTestSuite) TestAvailability() {
	path := "/dashboard/resources/availability/" + s.res.ID.String()
	rule := s.resources.BuildRegularRule()

	s.Run("success: added rule is appended", func() {
		day := availability.Friday
		created := availability.Rule{ID: uuid.New(), Type: availability.RuleTypeRegular, DayOfWeek: &day, StartTime: "08:00:00", EndTime: "09:00:00", IsAvailable: true}
		s.mockAPI.EXPECT().GetResource(gomock.Any(), s.res.ID).Return(s.res, nil)
		s.mockAPI.EXPECT().ListAvailability(gomock.Any(), s.res.ID).Return([]availability.Rule{rule}, nil)
		s.mockAPI.EXPECT().CreateAvailability(gomock.Any(), s.res.ID, gomock.Any()).Return(created, nil)

		form := url.Values{"type": {"REGULAR"}, "day_of_week": {"FRIDAY"}, "start_time": {"08:00"}, "end_time": {"09:00"}}
		rec := httptest.PerformForm(s.T(), s.router, http.MethodPost, path, form, s.signedIn(s.owner))

		var page usecase.AvailabilityPage
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &page)
		s.Require().Len(page.Rules.Data, 2)
		s.Equal(created.ID, page.Rules.Data[1].ID)
	})

	s.Run("error: exception without a date", func() {
		form := url.Values{"type": {"EXCEPTION"}, "start_time": {"08:00"}, "end_time": {"09:00"}}
		rec := httptest.PerformForm(s.T(), s.router, http.MethodPost, path, form, s.signedIn(s.owner))

		httptest.AssertFieldErrors(s.T(), rec, http.StatusUnprocessableEntity,
			map[string]string{"specific_date": "Enter a date as YYYY-MM-DD."})
	})

	s.Run("success: deleted rule is removed", func() {
		s.mockAPI.EXPECT().GetResource(gomock.Any(), s.res.ID).Return(s.res, nil)
		s.mockAPI.EXPECT().ListAvailability(gomock.Any(), s.res.ID).Return([]availability.Rule{rule}, nil)
		s.mockAPI.EXPECT().DeleteAvailability(gomock.Any(), s.res.ID, rule.ID).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path+"/delete/"+rule.ID.String(), nil, s.signedIn(s.owner))

		var page usecase.AvailabilityPage
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &page)
		s.Empty(page.Rules.Data)
	})
}
