package domain

import "errors"

// Sentinel errors returned by domain logic and repositories. Transport
// layers map these onto status codes with errors.Is.
var (
	ErrInvalidNationalID    = errors.New("national id must be exactly 8 digits")
	ErrInvalidDateRange     = errors.New("invalid date range")
	ErrDateRangeTooLong     = errors.New("date range exceeds the maximum rental period")
	ErrStartDateInPast      = errors.New("start date is in the past")
	ErrInvalidQuantity      = errors.New("quantity must be positive")
	ErrInvalidAmount        = errors.New("invalid monetary amount")
	ErrInvalidPaymentMethod = errors.New("unknown payment method")
	ErrInvalidRole          = errors.New("unknown role")

	ErrCustomerNotFound = errors.New("customer not found")
	ErrNotFound         = errors.New("resource not found")

	ErrItemUnavailable   = errors.New("item is not available for selection")
	ErrInsufficientStock = errors.New("insufficient stock for requested quantity")

	ErrInstructorRequired     = errors.New("instructor selection is required for this plan")
	ErrSlotRequired           = errors.New("schedule slot selection is required for this plan")
	ErrSlotNotPublished       = errors.New("slot is not published by the selected instructor")
	ErrInstructorTierMismatch = errors.New("instructor does not teach the selected plan tier")
	ErrInstructorAtCapacity   = errors.New("instructor has no remaining capacity")

	ErrEmptyOrder          = errors.New("order must contain at least one line")
	ErrPaymentInsufficient = errors.New("tendered amount is below the total")

	ErrTerminalState     = errors.New("record is in a terminal state")
	ErrInvalidTransition = errors.New("state transition is not allowed")
	ErrLinesNotReturned  = errors.New("rental lines have not all been returned")

	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("insufficient permissions")

	ErrIdempotencyConflict = errors.New("request was already processed")
)
