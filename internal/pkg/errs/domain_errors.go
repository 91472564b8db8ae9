package errs

import "errors"

// Sentinel errors shared by the command and query layers. Handlers map these
// to HTTP statuses with errors.Is; lower layers attach them with Mark.
var (
	// Validation errors
	ErrValidation         = errors.New("validation error")
	ErrEmptyDates         = errors.New("date set is empty")
	ErrPastDate           = errors.New("date is in the past")
	ErrInvalidDayKey      = errors.New("invalid day key")
	ErrInvalidRequestType = errors.New("invalid request type")
	ErrInvalidRate        = errors.New("invalid rate")

	// Lookup errors
	ErrBookingNotFound  = errors.New("booking not found")
	ErrDayBlockNotFound = errors.New("day block not found")

	// State machine errors
	ErrInvalidState           = errors.New("command not legal for current status")
	ErrNoReschedulePending    = errors.New("no reschedule proposal outstanding")
	ErrRescheduleOutstanding  = errors.New("reschedule proposal already outstanding")
	ErrConcurrentModification = errors.New("command already in flight for this booking")

	// Constraint errors
	ErrDateOccupied = errors.New("date has active bookings")

	// Operation errors
	ErrStoreOperationFailed = errors.New("store operation failed")
)
