package usecase

import (
	"context"
	"net/http"

	"booking-portal/internal/domain/booking"
	"booking-portal/internal/domain/user"
	"booking-portal/internal/infra/backend"
	"booking-portal/internal/pkg/errs"
	"booking-portal/internal/session"
	"booking-portal/internal/view"
)

type DashboardPage struct {
	User          user.User                      `json:"user"`
	DisplayName   string                         `json:"display_name"`
	Links         []view.Action                  `json:"links"`
	OwnedBookings *view.State[[]booking.Booking] `json:"owned_bookings,omitempty"`
}

type DashboardUseCase interface {
	Dashboard(ctx context.Context, sess session.Session) (*DashboardPage, error)
}

type dashboardUseCaseImpl struct {
	api backend.API
}

func NewDashboardUseCase(api backend.API) DashboardUseCase {
	return &dashboardUseCaseImpl{api: api}
}

// Dashboard summarises the signed-in identity. Owners also see the bookings
// made on their resources; a failure there does not fail the page.
func (d *dashboardUseCaseImpl) Dashboard(ctx context.Context, sess session.Session) (*DashboardPage, error) {
	if !sess.Authenticated() {
		return nil, errs.ErrSessionRequired
	}

	u := *sess.User
	page := &DashboardPage{
		User:        u,
		DisplayName: u.DisplayName(),
	}

	if u.IsBusinessOwner() {
		page.Links = []view.Action{
			{Label: "My Resources", Method: http.MethodGet, Href: "/dashboard/resources"},
			{Label: "New Resource", Method: http.MethodGet, Href: "/dashboard/resources/new"},
		}
		owned := view.NewSlot[[]booking.Booking]()
		_ = owned.Load(ctx, d.api.ListOwnedBookings)
		state := owned.State()
		page.OwnedBookings = &state
		return page, nil
	}

	page.Links = []view.Action{
		{Label: "Browse Resources", Method: http.MethodGet, Href: PathResources},
		{Label: "My Bookings", Method: http.MethodGet, Href: "/my-bookings"},
	}
	return page, nil
}
