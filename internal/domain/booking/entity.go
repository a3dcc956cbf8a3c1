package booking

import (
	"time"

	"github.com/google/uuid"
)

// Booking is one reservation of a field by a user for a date and slot.
// Owner and field never change after creation.
type Booking struct {
	id        uuid.UUID
	userID    uuid.UUID
	fieldID   uuid.UUID
	date      time.Time
	slot      TimeSlot
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func NewBooking(userID, fieldID uuid.UUID, date time.Time, slot TimeSlot) *Booking {
	return &Booking{
		id:      uuid.New(),
		userID:  userID,
		fieldID: fieldID,
		date:    dateOnly(date),
		slot:    slot,
		status:  StatusPending,
	}
}

func ReconstructBooking(id, userID, fieldID uuid.UUID, date time.Time, slot TimeSlot, status Status, createdAt, updatedAt time.Time) *Booking {
	return &Booking{
		id:        id,
		userID:    userID,
		fieldID:   fieldID,
		date:      dateOnly(date),
		slot:      slot,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) UserID() uuid.UUID    { return b.userID }
func (b *Booking) FieldID() uuid.UUID   { return b.fieldID }
func (b *Booking) Date() time.Time      { return b.date }
func (b *Booking) TimeSlot() TimeSlot   { return b.slot }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }

func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.userID == userID
}

// PlanTransition reports whether moving to status would change anything,
// without applying it.
func (b *Booking) PlanTransition(to Status, canCancelConfirmed bool) (bool, error) {
	return CheckTransition(b.status, to, canCancelConfirmed)
}

func (b *Booking) TransitionTo(to Status, canCancelConfirmed bool) (bool, error) {
	changed, err := CheckTransition(b.status, to, canCancelConfirmed)
	if err != nil || !changed {
		return false, err
	}
	b.status = to
	return true, nil
}

// Reschedule moves the booking. Slot uniqueness is left to the store.
func (b *Booking) Reschedule(date time.Time, slot TimeSlot) {
	b.date = dateOnly(date)
	b.slot = slot
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
