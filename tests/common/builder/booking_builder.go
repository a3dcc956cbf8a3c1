//go:build unit || e2e

package builder

import (
	"time"

	"field-booking/internal/domain/booking"
	reqdto "field-booking/internal/handler/dto/request"
	sqlc "field-booking/internal/infra/sqlc/generated"
	"field-booking/internal/pkg/pgconv"
	"field-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingBuilder struct {
	UserID   uuid.UUID
	FieldID  uuid.UUID
	Date     time.Time
	TimeSlot string
	Status   string
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		UserID:   uuid.New(),
		FieldID:  uuid.New(),
		Date:     time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		TimeSlot: "10:00-11:00",
		Status:   string(booking.StatusPending),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// BuildDomain returns a stored booking so that any status can be set.
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	slot, err := booking.ParseTimeSlot(b.TimeSlot)
	if err != nil {
		return nil, err
	}
	status, err := booking.ParseStatus(b.Status)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	return booking.ReconstructBooking(uuid.New(), b.UserID, b.FieldID, b.Date, slot, status, now, now), nil
}

func (b *BookingBuilder) BuildInfra() sqlc.Bookings {
	now := time.Now()
	return sqlc.Bookings{
		ID:          uuid.New(),
		UserID:      b.UserID,
		FieldID:     b.FieldID,
		BookingDate: pgconv.DateToPgtype(b.Date),
		TimeSlot:    b.TimeSlot,
		Status:      b.Status,
		CreatedAt:   pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:   pgtype.Timestamptz{Time: now, Valid: true},
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	now := time.Now()
	return &queries.BookingView{
		ID:       uuid.New(),
		Date:     b.Date,
		TimeSlot: b.TimeSlot,
		Status:   b.Status,
		User: queries.UserSummary{
			ID:    b.UserID,
			Name:  "Test User",
			Email: "test@example.com",
		},
		Field: queries.FieldSummary{
			ID:           b.FieldID,
			Name:         "Central Pitch",
			Location:     "12 Stadium Road",
			SportType:    "football",
			PricePerHour: 50,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		FieldID:  b.FieldID,
		Date:     booking.FormatDate(b.Date),
		TimeSlot: b.TimeSlot,
	}
}

func (b *BookingBuilder) WithUserID(id uuid.UUID) *BookingBuilder {
	b.UserID = id
	return b
}

func (b *BookingBuilder) WithFieldID(id uuid.UUID) *BookingBuilder {
	b.FieldID = id
	return b
}

func (b *BookingBuilder) WithDate(date time.Time) *BookingBuilder {
	b.Date = date
	return b
}

func (b *BookingBuilder) WithTimeSlot(slot string) *BookingBuilder {
	b.TimeSlot = slot
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = string(status)
	return b
}
