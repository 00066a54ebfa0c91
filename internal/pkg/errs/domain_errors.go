package errs

import "errors"

// Sentinel errors shared by the usecase and handler layers
var (
	// Session errors
	ErrSessionRequired = errors.New("session required")

	// Input errors
	ErrInvalidIdentifier = errors.New("invalid identifier")
	ErrInvalidDate       = errors.New("invalid date")

	// Booking flow errors
	ErrNoSlotSelected  = errors.New("no slot selected")
	ErrSlotUnavailable = errors.New("selected slot is not available")

	// Validation errors
	ErrFormValidation = errors.New("form validation failed")
)
