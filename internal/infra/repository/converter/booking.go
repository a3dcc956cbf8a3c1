package converter

import (
	"fmt"

	"field-booking/internal/domain/booking"
	sqlc "field-booking/internal/infra/sqlc/generated"
	"field-booking/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		ID:          b.ID(),
		UserID:      b.UserID(),
		FieldID:     b.FieldID(),
		BookingDate: pgconv.DateToPgtype(b.Date()),
		TimeSlot:    b.TimeSlot().String(),
		Status:      b.Status().String(),
	}
}

func BookingToUpdateParams(b *booking.Booking) sqlc.UpdateBookingParams {
	return sqlc.UpdateBookingParams{
		ID:          b.ID(),
		BookingDate: pgconv.DateToPgtype(b.Date()),
		TimeSlot:    b.TimeSlot().String(),
		Status:      b.Status().String(),
	}
}

func BookingFromRow(row sqlc.Bookings) (*booking.Booking, error) {
	slot, err := booking.ParseTimeSlot(row.TimeSlot)
	if err != nil {
		return nil, fmt.Errorf("stored booking %s: %w", row.ID, err)
	}
	status, err := booking.ParseStatus(row.Status)
	if err != nil {
		return nil, fmt.Errorf("stored booking %s: %w", row.ID, err)
	}

	return booking.ReconstructBooking(
		row.ID,
		row.UserID,
		row.FieldID,
		pgconv.DateFromPgtype(row.BookingDate),
		slot,
		status,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
