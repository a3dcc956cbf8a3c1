package booking

import "field-booking/internal/pkg/errs"

// Rule violations surfaced to callers.
var (
	ErrInvalidDate       = errs.New("booking date is outside the allowed window")
	ErrQuotaExceeded     = errs.New("daily booking limit reached")
	ErrSlotConflict      = errs.New("time slot already booked")
	ErrTooLateToCancel   = errs.New("booking can no longer be cancelled")
	ErrAlreadyConfirmed  = errs.New("confirmed booking cannot be cancelled")
	ErrInvalidTransition = errs.New("invalid booking status transition")
	ErrInvalidTimeSlot   = errs.New("time slot must be a one-hour range formatted HH:00-HH:00")
	ErrInvalidStatus     = errs.New("status must be one of pending, confirmed, cancelled")
	ErrInvalidDateFormat = errs.New("date must be formatted YYYY-MM-DD")
)
