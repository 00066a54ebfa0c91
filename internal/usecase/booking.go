package usecase

import (
	"context"
	"strings"
	"time"

	"booking-portal/internal/domain/availability"
	"booking-portal/internal/domain/booking"
	"booking-portal/internal/domain/resource"
	reqdto "booking-portal/internal/handler/dto/request"
	"booking-portal/internal/infra/backend"
	"booking-portal/internal/pkg/clock"
	"booking-portal/internal/pkg/errs"
	"booking-portal/internal/session"
	"booking-portal/internal/view"

	"github.com/google/uuid"
)

// ResourceDetail is the resource page for one day. Pricing and booking are
// offered only when the day has at least one slot. A failed slot lookup is
// rendered in Slots instead of failing the page.
type ResourceDetail struct {
	Resource      view.State[*resource.Resource]   `json:"resource"`
	Date          string                           `json:"date"`
	Slots         view.State[[]booking.Slot]       `json:"slots"`
	SelectedSlot  *int                             `json:"selected_slot,omitempty"`
	Quote         *view.State[*booking.PriceQuote] `json:"quote,omitempty"`
	CanQuote      bool                             `json:"can_quote"`
	CanBook       bool                             `json:"can_book"`
	LoginRequired bool                             `json:"login_required"`
}

type BookingsPage struct {
	Bookings view.State[[]booking.Booking] `json:"bookings"`
}

type BookingUseCase interface {
	Detail(ctx context.Context, sess session.Session, resourceID uuid.UUID, q reqdto.DetailQuery) (*ResourceDetail, error)
	Quote(ctx context.Context, resourceID uuid.UUID, req reqdto.SlotRequest) (*booking.PriceQuote, error)
	Book(ctx context.Context, resourceID uuid.UUID, req reqdto.BookingRequest) (*booking.Booking, error)
	MyBookings(ctx context.Context) (*BookingsPage, error)
	BookingDetail(ctx context.Context, bookingID uuid.UUID) (*booking.Booking, error)
	Cancel(ctx context.Context, bookingID uuid.UUID) (*BookingsPage, error)
}

type bookingUseCaseImpl struct {
	api   backend.API
	clock clock.Clock
}

func NewBookingUseCase(api backend.API, clk clock.Clock) BookingUseCase {
	return &bookingUseCaseImpl{api: api, clock: clk}
}

func (b *bookingUseCaseImpl) Detail(ctx context.Context, sess session.Session, resourceID uuid.UUID, q reqdto.DetailQuery) (*ResourceDetail, error) {
	day, err := b.pageDate(q.Date)
	if err != nil {
		return nil, err
	}

	var resErr error
	resSlot := view.NewSlot[*resource.Resource]()
	daySlots := view.NewSlot[[]booking.Slot]()
	_ = loadPair(ctx,
		resSlot, func(ctx context.Context) (*resource.Resource, error) {
			res, err := b.api.GetResource(ctx, resourceID)
			if err != nil {
				resErr = err
				return nil, err
			}
			return &res, nil
		},
		daySlots, func(ctx context.Context) ([]booking.Slot, error) {
			return b.api.AvailableSlots(ctx, resourceID, day, day)
		},
	)

	detail := &ResourceDetail{
		Resource: resSlot.State(),
		Date:     day.Format(availability.DateLayout),
		Slots:    daySlots.State(),
	}
	if resErr != nil {
		return nil, resErr
	}

	hasSlots := detail.Slots.Status == view.StatusSuccess && len(detail.Slots.Data) > 0
	detail.CanQuote = hasSlots
	detail.CanBook = hasSlots && sess.Authenticated()
	detail.LoginRequired = hasSlots && !sess.Authenticated()

	if q.Slot != nil && hasSlots && *q.Slot < len(detail.Slots.Data) {
		selected := detail.Slots.Data[*q.Slot]
		quote := view.NewSlot[*booking.PriceQuote]()
		_ = quote.Load(ctx, func(ctx context.Context) (*booking.PriceQuote, error) {
			return b.price(ctx, resourceID, selected)
		})
		state := quote.State()
		detail.SelectedSlot = q.Slot
		detail.Quote = &state
	}
	return detail, nil
}

func (b *bookingUseCaseImpl) pageDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return clock.Today(b.clock), nil
	}
	day, err := time.Parse(availability.DateLayout, raw)
	if err != nil {
		return time.Time{}, errs.Mark(err, errs.ErrInvalidDate)
	}
	return day, nil
}

func (b *bookingUseCaseImpl) Quote(ctx context.Context, resourceID uuid.UUID, req reqdto.SlotRequest) (*booking.PriceQuote, error) {
	slot, err := req.ToDomain()
	if err != nil {
		return nil, view.SlotFields.Field("start_time", "Choose a slot first.", errs.Mark(err, errs.ErrNoSlotSelected))
	}
	return b.price(ctx, resourceID, slot)
}

func (b *bookingUseCaseImpl) price(ctx context.Context, resourceID uuid.UUID, slot booking.Slot) (*booking.PriceQuote, error) {
	quote, err := b.api.CalculatePrice(ctx, booking.NewPriceRequest(resourceID, slot))
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

// Book creates the booking only for a slot the backend still offers on that
// day.
func (b *bookingUseCaseImpl) Book(ctx context.Context, resourceID uuid.UUID, req reqdto.BookingRequest) (*booking.Booking, error) {
	slot, err := req.Slot()
	if err != nil {
		return nil, view.SlotFields.Field("start_time", "Choose a slot first.", errs.Mark(err, errs.ErrNoSlotSelected))
	}
	day, err := slotDay(slot)
	if err != nil {
		return nil, view.SlotFields.Field("start_time", "Choose a slot first.", err)
	}

	offered, err := b.api.AvailableSlots(ctx, resourceID, day, day)
	if err != nil {
		return nil, err
	}
	if !containsSlot(offered, slot) {
		return nil, errs.ErrSlotUnavailable
	}

	created, err := b.api.CreateBooking(ctx, booking.NewRequest(resourceID, slot, req.Notes))
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func slotDay(slot booking.Slot) (time.Time, error) {
	if len(slot.StartTime) < len(availability.DateLayout) {
		return time.Time{}, errs.ErrInvalidDate
	}
	day, err := time.Parse(availability.DateLayout, slot.StartTime[:len(availability.DateLayout)])
	if err != nil {
		return time.Time{}, errs.Mark(err, errs.ErrInvalidDate)
	}
	return day, nil
}

func containsSlot(slots []booking.Slot, want booking.Slot) bool {
	for _, s := range slots {
		if s.Matches(want) {
			return true
		}
	}
	return false
}

func (b *bookingUseCaseImpl) MyBookings(ctx context.Context) (*BookingsPage, error) {
	bookings := view.NewSlot[[]booking.Booking]()
	if err := bookings.Load(ctx, b.api.ListMyBookings); err != nil {
		return nil, err
	}
	return &BookingsPage{Bookings: bookings.State()}, nil
}

func (b *bookingUseCaseImpl) BookingDetail(ctx context.Context, bookingID uuid.UUID) (*booking.Booking, error) {
	found, err := b.api.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	return &found, nil
}

// Cancel cancels one booking and marks only that entry as CANCELLED in the
// list loaded before the call. The list is not fetched again.
func (b *bookingUseCaseImpl) Cancel(ctx context.Context, bookingID uuid.UUID) (*BookingsPage, error) {
	bookings := view.NewSlot[[]booking.Booking]()
	if err := bookings.Load(ctx, b.api.ListMyBookings); err != nil {
		return nil, err
	}
	if _, err := b.api.CancelBooking(ctx, bookingID); err != nil {
		return nil, err
	}
	bookings.Update(func(list []booking.Booking) []booking.Booking {
		return booking.WithStatus(list, bookingID, booking.StatusCancelled)
	})
	return &BookingsPage{Bookings: bookings.State()}, nil
}
