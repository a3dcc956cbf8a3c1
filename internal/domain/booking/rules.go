package booking

import (
	"time"

	"field-booking/internal/pkg/clock"
)

// Rules holds the time and quota limits applied to booking mutations.
// Calendar comparisons happen in Location.
type Rules struct {
	maxPerDay      int
	maxAdvanceDays int
	cancelWindow   time.Duration
	location       *time.Location
}

func NewRules(maxPerDay, maxAdvanceDays int, cancelWindow time.Duration, loc *time.Location) *Rules {
	if loc == nil {
		loc = time.UTC
	}
	return &Rules{
		maxPerDay:      maxPerDay,
		maxAdvanceDays: maxAdvanceDays,
		cancelWindow:   cancelWindow,
		location:       loc,
	}
}

func (r *Rules) MaxPerDay() int              { return r.maxPerDay }
func (r *Rules) MaxAdvanceDays() int         { return r.maxAdvanceDays }
func (r *Rules) CancelWindow() time.Duration { return r.cancelWindow }
func (r *Rules) Location() *time.Location    { return r.location }

// CheckDate accepts today through today+maxAdvanceDays inclusive.
func (r *Rules) CheckDate(date, now time.Time) error {
	days := clock.DaysBetween(now, r.onCalendar(date), r.location)
	if days < 0 || days > r.maxAdvanceDays {
		return ErrInvalidDate
	}
	return nil
}

// CheckQuota takes the number of non-cancelled bookings the user already
// holds on the date.
func (r *Rules) CheckQuota(existing int) error {
	if existing >= r.maxPerDay {
		return ErrQuotaExceeded
	}
	return nil
}

// SlotStart is the instant the slot begins in the booking zone.
func (r *Rules) SlotStart(date time.Time, slot TimeSlot) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, slot.StartHour(), 0, 0, 0, r.location)
}

// CheckCancelWindow fails when less than the cancel window remains before
// the slot starts. Exactly the window is still allowed.
func (r *Rules) CheckCancelWindow(date time.Time, slot TimeSlot, now time.Time) error {
	if r.SlotStart(date, slot).Sub(now) < r.cancelWindow {
		return ErrTooLateToCancel
	}
	return nil
}

// Today is the current calendar date in the booking zone, as midnight UTC.
func (r *Rules) Today(now time.Time) time.Time {
	y, m, d := now.In(r.location).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (r *Rules) onCalendar(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, r.location)
}
