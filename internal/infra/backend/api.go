package backend

import (
	"context"
	"time"

	"booking-portal/internal/domain/availability"
	"booking-portal/internal/domain/booking"
	"booking-portal/internal/domain/resource"
	"booking-portal/internal/domain/user"

	"github.com/google/uuid"
)

//go:generate mockgen -source=api.go -destination=../../../tests/mock/backend/mock_api.go -package=mockbackend

// API is the fixed set of backend operations the views use. The bearer token
// travels in the context (see WithToken).
type API interface {
	Login(ctx context.Context, email, password string) (LoginResult, error)
	Register(ctx context.Context, reg user.Registration) (user.User, error)

	ListResources(ctx context.Context) ([]resource.Resource, error)
	GetResource(ctx context.Context, id uuid.UUID) (resource.Resource, error)
	CreateResource(ctx context.Context, payload resource.Payload) (resource.Resource, error)
	UpdateResource(ctx context.Context, id uuid.UUID, payload resource.Payload) (resource.Resource, error)
	DeleteResource(ctx context.Context, id uuid.UUID) error

	ListAvailability(ctx context.Context, resourceID uuid.UUID) ([]availability.Rule, error)
	CreateAvailability(ctx context.Context, resourceID uuid.UUID, payload availability.Payload) (availability.Rule, error)
	DeleteAvailability(ctx context.Context, resourceID, ruleID uuid.UUID) error
	AvailableSlots(ctx context.Context, resourceID uuid.UUID, start, end time.Time) ([]booking.Slot, error)

	CalculatePrice(ctx context.Context, req booking.PriceRequest) (booking.PriceQuote, error)
	CreateBooking(ctx context.Context, req booking.Request) (booking.Booking, error)
	ListMyBookings(ctx context.Context) ([]booking.Booking, error)
	CancelBooking(ctx context.Context, id uuid.UUID) (booking.Booking, error)
	GetBooking(ctx context.Context, id uuid.UUID) (booking.Booking, error)
	ListOwnedBookings(ctx context.Context) ([]booking.Booking, error)
}

var _ API = (*Client)(nil)
