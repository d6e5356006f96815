package domain

import "errors"

// Validation errors, reported first-violation-first in the order the form is
// checked: guest name, contact, dates, per-room fields, then consistency.
var (
	ErrGuestNameRequired   = errors.New("guest name is required")
	ErrGuestNameInvalid    = errors.New("guest name must be at least 2 letters")
	ErrContactInvalid      = errors.New("contact must be a valid 10-digit mobile number")
	ErrDatesRequired       = errors.New("check-in and check-out dates are required")
	ErrDatesInvalid        = errors.New("check-in and check-out dates must be valid")
	ErrRoomTypeRequired    = errors.New("room type is required")
	ErrUnitPriceInvalid    = errors.New("room unit price must be greater than 0")
	ErrRoomCountInvalid    = errors.New("room count must be at least 1")
	ErrRoomCountMismatch   = errors.New("room line items do not add up to the requested room total")
	ErrAdultsOutOfRange    = errors.New("adults must be between 1 and 10")
	ErrChildrenOutOfRange  = errors.New("children must be between 0 and 10")
	ErrRoomsOutOfRange     = errors.New("rooms must be between 1 and 20")
	ErrBillTypeInvalid     = errors.New("unknown bill type")
	ErrOverrideInvalid     = errors.New("override policy must be charge or waive")
)

var ErrBillNotFound = errors.New("bill not found")
