package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"booking-portal/internal/domain/availability"
	"booking-portal/internal/domain/booking"

	"github.com/google/uuid"
)

func availabilityPath(resourceID uuid.UUID) string {
	return fmt.Sprintf("/resources/%s/availability/", resourceID)
}

func (c *Client) ListAvailability(ctx context.Context, resourceID uuid.UUID) ([]availability.Rule, error) {
	raw, err := c.Request(ctx, availabilityPath(resourceID), RequestOptions{})
	rules, err := decodeInto[[]availability.Rule](raw, err)
	if err != nil {
		return nil, err
	}
	if rules == nil {
		rules = []availability.Rule{}
	}
	return rules, nil
}

func (c *Client) CreateAvailability(ctx context.Context, resourceID uuid.UUID, payload availability.Payload) (availability.Rule, error) {
	raw, err := c.Request(ctx, availabilityPath(resourceID), RequestOptions{Method: http.MethodPost, Body: payload})
	return decodeInto[availability.Rule](raw, err)
}

func (c *Client) DeleteAvailability(ctx context.Context, resourceID, ruleID uuid.UUID) error {
	_, err := c.Request(ctx, availabilityPath(resourceID)+ruleID.String(), RequestOptions{Method: http.MethodDelete})
	return err
}

// AvailableSlots asks for the slots between two dates. Only the date part of
// start and end is sent.
func (c *Client) AvailableSlots(ctx context.Context, resourceID uuid.UUID, start, end time.Time) ([]booking.Slot, error) {
	q := url.Values{}
	q.Set("start_date", start.Format(availability.DateLayout))
	q.Set("end_date", end.Format(availability.DateLayout))

	path := availabilityPath(resourceID) + "available_slots?" + q.Encode()
	raw, err := c.Request(ctx, path, RequestOptions{})
	slots, err := decodeInto[[]booking.Slot](raw, err)
	if err != nil {
		return nil, err
	}
	if slots == nil {
		slots = []booking.Slot{}
	}
	return slots, nil
}
