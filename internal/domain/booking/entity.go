package booking

import (
	"errors"
	"strings"

	"booking-portal/internal/domain/resource"
	"booking-portal/internal/pkg/ptr"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus = errors.New("invalid booking status")
	ErrEmptySlot     = errors.New("slot start and end are required")
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsCancellable reports whether a customer may still cancel.
func (s Status) IsCancellable() bool {
	return s == StatusPending || s == StatusConfirmed
}

// Slot is a bookable interval computed by the backend. Times are kept as the
// backend's ISO strings and sent back verbatim.
type Slot struct {
	StartTime         string `json:"start_time"`
	EndTime           string `json:"end_time"`
	CapacityAvailable *int   `json:"capacity_available,omitempty"`
}

func NewSlot(start, end string) (Slot, error) {
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	if start == "" || end == "" {
		return Slot{}, ErrEmptySlot
	}
	return Slot{StartTime: start, EndTime: end}, nil
}

func (s Slot) Matches(other Slot) bool {
	return s.StartTime == other.StartTime && s.EndTime == other.EndTime
}

// Booking is a customer's reservation as returned by the backend.
type Booking struct {
	ID         uuid.UUID          `json:"booking_id"`
	CustomerID *uuid.UUID         `json:"customer_id,omitempty"`
	ResourceID *uuid.UUID         `json:"resource_id,omitempty"`
	Resource   *resource.Resource `json:"resource,omitempty"`
	StartTime  string             `json:"start_time"`
	EndTime    string             `json:"end_time"`
	TotalPrice *float64           `json:"total_price"`
	Status     Status             `json:"status"`
	Notes      *string            `json:"notes"`
	CreatedAt  string             `json:"created_at,omitempty"`
}

func (b Booking) ResourceName() string {
	if b.Resource == nil {
		return ""
	}
	return b.Resource.Name
}

// WithStatus returns every booking unchanged except the one with id, whose
// status is replaced. The input slice is not modified.
func WithStatus(bookings []Booking, id uuid.UUID, status Status) []Booking {
	out := make([]Booking, len(bookings))
	copy(out, bookings)
	for i := range out {
		if out[i].ID == id {
			out[i].Status = status
		}
	}
	return out
}

// PriceRequest is the body of POST /bookings/calculate_price.
type PriceRequest struct {
	ResourceID uuid.UUID `json:"resource_id"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
}

type PriceQuote struct {
	TotalPrice float64 `json:"total_price"`
}

// Request is the body of POST /bookings/.
type Request struct {
	ResourceID uuid.UUID `json:"resource_id"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	Notes      *string   `json:"notes,omitempty"`
}

func NewRequest(resourceID uuid.UUID, slot Slot, notes string) Request {
	return Request{
		ResourceID: resourceID,
		StartTime:  slot.StartTime,
		EndTime:    slot.EndTime,
		Notes:      ptr.NonEmpty(strings.TrimSpace(notes)),
	}
}

func NewPriceRequest(resourceID uuid.UUID, slot Slot) PriceRequest {
	return PriceRequest{
		ResourceID: resourceID,
		StartTime:  slot.StartTime,
		EndTime:    slot.EndTime,
	}
}
