package request

import (
	"booking-portal/internal/domain/booking"
)

// DetailQuery selects the day shown on a resource page and, optionally, the
// index of the slot to price.
type DetailQuery struct {
	Date string `form:"date"`
	Slot *int   `form:"slot" binding:"omitempty,min=0"`
}

type SlotRequest struct {
	StartTime string `form:"start_time" json:"start_time" binding:"required"`
	EndTime   string `form:"end_time" json:"end_time" binding:"required"`
}

func (r SlotRequest) ToDomain() (booking.Slot, error) {
	return booking.NewSlot(r.StartTime, r.EndTime)
}

type BookingRequest struct {
	StartTime string `form:"start_time" json:"start_time" binding:"required"`
	EndTime   string `form:"end_time" json:"end_time" binding:"required"`
	Notes     string `form:"notes" json:"notes"`
}

func (r BookingRequest) Slot() (booking.Slot, error) {
	return booking.NewSlot(r.StartTime, r.EndTime)
}
