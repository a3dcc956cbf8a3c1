package shared

import (
	"context"
	"time"

	"field-booking/internal/domain/booking"
	"field-booking/internal/domain/field"
	"field-booking/internal/domain/review"
	"field-booking/internal/domain/user"
	sqlc "field-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

type Tx interface {
	Users() UserRepository
	Fields() FieldRepository
	Bookings() BookingRepository
	Reviews() ReviewRepository
	DB() sqlc.DBTX
	// AfterCommit queues fn to run once the transaction has committed.
	AfterCommit(fn func(ctx context.Context))
}

type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, email user.Email) (*user.User, error)
	Create(ctx context.Context, u *user.User) error
	Update(ctx context.Context, u *user.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type FieldRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*field.Field, error)
	Create(ctx context.Context, f *field.Field) error
	Update(ctx context.Context, f *field.Field) error
}

type BookingRepository interface {
	// FindByIDForUpdate row-locks the booking until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// LockUserDay serialises creations for one user and date.
	LockUserDay(ctx context.Context, userID uuid.UUID, date time.Time) error
	CountActiveByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (int, error)
	// ExistsActiveSlot ignores cancelled bookings and the booking excludeID.
	ExistsActiveSlot(ctx context.Context, fieldID uuid.UUID, date time.Time, slot booking.TimeSlot, excludeID uuid.UUID) (bool, error)
	// CountConfirmedBefore counts the user's confirmed bookings on the field
	// dated strictly before the given day.
	CountConfirmedBefore(ctx context.Context, userID, fieldID uuid.UUID, before time.Time) (int, error)
	Create(ctx context.Context, b *booking.Booking) error
	Update(ctx context.Context, b *booking.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ReviewRepository interface {
	// FindByIDForUpdate row-locks the review until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*review.Review, error)
	Create(ctx context.Context, r *review.Review) error
	Update(ctx context.Context, r *review.Review) error
	Delete(ctx context.Context, id uuid.UUID) error
	// RecalcFieldStats rebuilds the stored rating summary of one field.
	RecalcFieldStats(ctx context.Context, fieldID uuid.UUID) error
	ReviewedFieldIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}
