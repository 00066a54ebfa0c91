package backend

import (
	"context"
	"net/http"

	"booking-portal/internal/domain/booking"

	"github.com/google/uuid"
)

func (c *Client) CalculatePrice(ctx context.Context, req booking.PriceRequest) (booking.PriceQuote, error) {
	raw, err := c.Request(ctx, "/bookings/calculate_price", RequestOptions{Method: http.MethodPost, Body: req})
	return decodeInto[booking.PriceQuote](raw, err)
}

func (c *Client) CreateBooking(ctx context.Context, req booking.Request) (booking.Booking, error) {
	raw, err := c.Request(ctx, "/bookings/", RequestOptions{Method: http.MethodPost, Body: req})
	return decodeInto[booking.Booking](raw, err)
}

func (c *Client) ListMyBookings(ctx context.Context) ([]booking.Booking, error) {
	return c.listBookings(ctx, "/bookings/customer")
}

// ListOwnedBookings returns bookings made on resources of the current owner.
func (c *Client) ListOwnedBookings(ctx context.Context) ([]booking.Booking, error) {
	return c.listBookings(ctx, "/bookings/owned")
}

func (c *Client) GetBooking(ctx context.Context, id uuid.UUID) (booking.Booking, error) {
	raw, err := c.Request(ctx, "/bookings/"+id.String(), RequestOptions{})
	return decodeInto[booking.Booking](raw, err)
}

func (c *Client) CancelBooking(ctx context.Context, id uuid.UUID) (booking.Booking, error) {
	raw, err := c.Request(ctx, "/bookings/"+id.String()+"/cancel", RequestOptions{Method: http.MethodPut})
	return decodeInto[booking.Booking](raw, err)
}

func (c *Client) listBookings(ctx context.Context, path string) ([]booking.Booking, error) {
	raw, err := c.Request(ctx, path, RequestOptions{})
	list, err := decodeInto[[]booking.Booking](raw, err)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []booking.Booking{}
	}
	return list, nil
}
