//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"field-booking/internal/domain/booking"
	"field-booking/internal/infra"
	sqlc "field-booking/internal/infra/sqlc/generated"
	"field-booking/internal/pkg/errs"
	"field-booking/internal/pkg/pgconv"
	"field-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingWriteQueries struct {
	mock.Mock
}

func (m *MockBookingWriteQueries) CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (sqlc.Bookings, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Bookings), args.Error(1)
}

func (m *MockBookingWriteQueries) GetBookingForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Bookings), args.Error(1)
}

func (m *MockBookingWriteQueries) UpdateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingParams) (sqlc.Bookings, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Bookings), args.Error(1)
}

func (m *MockBookingWriteQueries) DeleteBooking(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingWriteQueries) LockUserDay(ctx context.Context, db sqlc.DBTX, key int64) error {
	args := m.Called(ctx, db, key)
	return args.Error(0)
}

func (m *MockBookingWriteQueries) CountActiveBookingsByUserAndDate(ctx context.Context, db sqlc.DBTX, arg sqlc.CountActiveBookingsByUserAndDateParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingWriteQueries) ActiveSlotExists(ctx context.Context, db sqlc.DBTX, arg sqlc.ActiveSlotExistsParams) (bool, error) {
	args := m.Called(ctx, db, arg)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingWriteQueries) CountConfirmedBookingsBefore(ctx context.Context, db sqlc.DBTX, arg sqlc.CountConfirmedBookingsBeforeParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func TestBookingRepositoryFindByIDForUpdate(t *testing.T) {
	row := builder.NewBookingBuilder().BuildInfra()

	t.Run("success", func(t *testing.T) {
		mockQueries := new(MockBookingWriteQueries)
		mockQueries.On("GetBookingForUpdate", mock.Anything, mock.Anything, row.ID).Return(row, nil)

		got, err := NewBookingRepository(mockQueries, nil).FindByIDForUpdate(context.Background(), row.ID)

		require.NoError(t, err)
		assert.Equal(t, row.ID, got.ID())
		assert.Equal(t, row.TimeSlot, got.TimeSlot().String())
		assert.Equal(t, booking.Status(row.Status), got.Status())
		assert.Equal(t, row.BookingDate.Time, got.Date())
		mockQueries.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockQueries := new(MockBookingWriteQueries)
		mockQueries.On("GetBookingForUpdate", mock.Anything, mock.Anything, row.ID).Return(sqlc.Bookings{}, pgx.ErrNoRows)

		got, err := NewBookingRepository(mockQueries, nil).FindByIDForUpdate(context.Background(), row.ID)

		assert.Nil(t, got)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.True(t, errs.Is(err, errs.ErrRecordNotFound))
	})

	t.Run("corrupt row", func(t *testing.T) {
		bad := row
		bad.TimeSlot = "10:00-12:00"
		mockQueries := new(MockBookingWriteQueries)
		mockQueries.On("GetBookingForUpdate", mock.Anything, mock.Anything, row.ID).Return(bad, nil)

		_, err := NewBookingRepository(mockQueries, nil).FindByIDForUpdate(context.Background(), row.ID)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestBookingRepositoryCreate(t *testing.T) {
	b, err := builder.NewBookingBuilder().BuildDomain()
	require.NoError(t, err)

	tests := []struct {
		name      string
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "success"},
		{
			name:      "active slot index rejects insert",
			mockError: &pgconn.PgError{Code: "23505", ConstraintName: "bookings_active_slot_key"},
			wantKind:  infra.KindDuplicateKey,
		},
		{
			name:      "unknown field",
			mockError: &pgconn.PgError{Code: "23503", ConstraintName: "bookings_field_id_fkey"},
			wantKind:  infra.KindForeignKeyViolated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockBookingWriteQueries)
			mockQueries.On("CreateBooking", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.CreateBookingParams) bool {
				return p.ID == b.ID() && p.Status == "pending" && p.TimeSlot == b.TimeSlot().String()
			})).Return(sqlc.Bookings{}, tt.mockError)

			err := NewBookingRepository(mockQueries, nil).Create(context.Background(), b)

			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestBookingRepositoryDuplicateKeepsConstraint(t *testing.T) {
	b, err := builder.NewBookingBuilder().BuildDomain()
	require.NoError(t, err)
	mockQueries := new(MockBookingWriteQueries)
	mockQueries.On("CreateBooking", mock.Anything, mock.Anything, mock.Anything).
		Return(sqlc.Bookings{}, &pgconn.PgError{Code: "23505", ConstraintName: "bookings_active_slot_key"})

	err = NewBookingRepository(mockQueries, nil).Create(context.Background(), b)

	var repoErr infra.RepositoryError
	require.ErrorAs(t, err, &repoErr)
	assert.Equal(t, "bookings_active_slot_key", repoErr.Constraint)
}

func TestBookingRepositoryCountAndLock(t *testing.T) {
	userID := uuid.New()
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	mockQueries := new(MockBookingWriteQueries)
	mockQueries.On("LockUserDay", mock.Anything, mock.Anything, pgconv.AdvisoryKey(userID, date)).Return(nil)
	mockQueries.On("CountActiveBookingsByUserAndDate", mock.Anything, mock.Anything, sqlc.CountActiveBookingsByUserAndDateParams{
		UserID:      userID,
		BookingDate: pgconv.DateToPgtype(date),
	}).Return(int64(2), nil)

	repo := NewBookingRepository(mockQueries, nil)
	require.NoError(t, repo.LockUserDay(context.Background(), userID, date))

	count, err := repo.CountActiveByUserAndDate(context.Background(), userID, date)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	mockQueries.AssertExpectations(t)
}

func TestBookingRepositoryDeleteMissing(t *testing.T) {
	id := uuid.New()
	mockQueries := new(MockBookingWriteQueries)
	mockQueries.On("DeleteBooking", mock.Anything, mock.Anything, id).Return(int64(0), nil)

	err := NewBookingRepository(mockQueries, nil).Delete(context.Background(), id)

	assert.True(t, errs.Is(err, errs.ErrRecordNotFound))
}

func TestBookingRepositoryCountConfirmedBefore(t *testing.T) {
	userID, fieldID := uuid.New(), uuid.New()
	today := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	mockQueries := new(MockBookingWriteQueries)
	mockQueries.On("CountConfirmedBookingsBefore", mock.Anything, mock.Anything, sqlc.CountConfirmedBookingsBeforeParams{
		UserID:  userID,
		FieldID: fieldID,
		Before:  pgconv.DateToPgtype(today),
	}).Return(int64(1), nil)

	count, err := NewBookingRepository(mockQueries, nil).CountConfirmedBefore(context.Background(), userID, fieldID, today)

	require.NoError(t, err)
	assert.Equal(t, 1, count)
	mockQueries.AssertExpectations(t)
}
