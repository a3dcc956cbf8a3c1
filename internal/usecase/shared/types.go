package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type BookingEventType string

const (
	BookingCreated   BookingEventType = "booking.created"
	BookingConfirmed BookingEventType = "booking.confirmed"
	BookingCancelled BookingEventType = "booking.cancelled"
)

// BookingEvent is the payload published after a committed booking change.
type BookingEvent struct {
	Type       BookingEventType `json:"-"`
	BookingID  uuid.UUID        `json:"booking_id"`
	UserID     uuid.UUID        `json:"user_id"`
	FieldID    uuid.UUID        `json:"field_id"`
	Date       string           `json:"date"`
	TimeSlot   string           `json:"time_slot"`
	Status     string           `json:"status"`
	OccurredAt time.Time        `json:"occurred_at"`
}

// EventPublisher delivers booking events. Delivery is best effort; callers
// log failures and carry on.
type EventPublisher interface {
	Publish(ctx context.Context, event BookingEvent) error
}

// FieldCache stores serialised field listings keyed by sport type ("" for all).
// Every Invalidate bumps the generation; Set is a no-op unless the generation
// still matches the one read before the listing was loaded.
type FieldCache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Generation(ctx context.Context) (int64, error)
	Set(ctx context.Context, key string, generation int64, value any) error
	Invalidate(ctx context.Context) error
}
