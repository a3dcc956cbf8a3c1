package shared

import "field-booking/internal/pkg/errs"

// Shared by commands and queries so both sides report the same not-found error.
var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrFieldNotFound   = errs.New("field not found")
	ErrReviewNotFound  = errs.New("review not found")
	ErrUserNotFound    = errs.New("user not found")
)

// NotFoundAs swaps a repository not-found error for sentinel and passes
// anything else through.
func NotFoundAs(err, sentinel error) error {
	if errs.Is(err, errs.ErrRecordNotFound) {
		return sentinel
	}
	return err
}
