package repository

import (
	"context"
	"time"

	"field-booking/internal/domain/booking"
	"field-booking/internal/infra"
	"field-booking/internal/infra/repository/converter"
	sqlc "field-booking/internal/infra/sqlc/generated"
	"field-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (sqlc.Bookings, error)
	GetBookingForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	UpdateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingParams) (sqlc.Bookings, error)
	DeleteBooking(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	LockUserDay(ctx context.Context, db sqlc.DBTX, lockKey int64) error
	CountActiveBookingsByUserAndDate(ctx context.Context, db sqlc.DBTX, arg sqlc.CountActiveBookingsByUserAndDateParams) (int64, error)
	ActiveSlotExists(ctx context.Context, db sqlc.DBTX, arg sqlc.ActiveSlotExistsParams) (bool, error)
	CountConfirmedBookingsBefore(ctx context.Context, db sqlc.DBTX, arg sqlc.CountConfirmedBookingsBeforeParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to find booking by ID", err)
	}
	b, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load booking", err)
	}
	return b, nil
}

func (r *BookingRepository) LockUserDay(ctx context.Context, userID uuid.UUID, date time.Time) error {
	if err := r.queries.LockUserDay(ctx, r.db, pgconv.AdvisoryKey(userID, date)); err != nil {
		return infra.WrapRepoErr("failed to lock user day", err)
	}
	return nil
}

func (r *BookingRepository) CountActiveByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (int, error) {
	count, err := r.queries.CountActiveBookingsByUserAndDate(ctx, r.db, sqlc.CountActiveBookingsByUserAndDateParams{
		UserID:      userID,
		BookingDate: pgconv.DateToPgtype(date),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count bookings", err)
	}
	return int(count), nil
}

func (r *BookingRepository) ExistsActiveSlot(ctx context.Context, fieldID uuid.UUID, date time.Time, slot booking.TimeSlot, excludeID uuid.UUID) (bool, error) {
	exists, err := r.queries.ActiveSlotExists(ctx, r.db, sqlc.ActiveSlotExistsParams{
		FieldID:     fieldID,
		BookingDate: pgconv.DateToPgtype(date),
		TimeSlot:    slot.String(),
		ExcludeID:   excludeID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check slot", err)
	}
	return exists, nil
}

func (r *BookingRepository) CountConfirmedBefore(ctx context.Context, userID, fieldID uuid.UUID, before time.Time) (int, error) {
	count, err := r.queries.CountConfirmedBookingsBefore(ctx, r.db, sqlc.CountConfirmedBookingsBeforeParams{
		UserID:  userID,
		FieldID: fieldID,
		Before:  pgconv.DateToPgtype(before),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count past bookings", err)
	}
	return int(count), nil
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	if _, err := r.queries.CreateBooking(ctx, r.db, converter.BookingToCreateParams(b)); err != nil {
		return infra.ClassifyPgErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	if _, err := r.queries.UpdateBooking(ctx, r.db, converter.BookingToUpdateParams(b)); err != nil {
		return infra.ClassifyPgErr("failed to update booking", err)
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.queries.DeleteBooking(ctx, r.db, id)
	if err != nil {
		return infra.ClassifyPgErr("failed to delete booking", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
