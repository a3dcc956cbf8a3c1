//go:build unit

package repository

import (
	"context"
	"testing"

	"field-booking/internal/infra"
	sqlc "field-booking/internal/infra/sqlc/generated"
	"field-booking/internal/pkg/errs"
	"field-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReviewWriteQueries struct {
	mock.Mock
}

func (m *MockReviewWriteQueries) CreateReview(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReviewParams) (sqlc.Reviews, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Reviews), args.Error(1)
}

func (m *MockReviewWriteQueries) GetReviewForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reviews, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Reviews), args.Error(1)
}

func (m *MockReviewWriteQueries) UpdateReview(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReviewParams) (sqlc.Reviews, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Reviews), args.Error(1)
}

func (m *MockReviewWriteQueries) DeleteReview(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReviewWriteQueries) LockFieldRatings(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error {
	args := m.Called(ctx, db, id)
	return args.Error(0)
}

func (m *MockReviewWriteQueries) RecalcFieldRatingStats(ctx context.Context, db sqlc.DBTX, fieldID uuid.UUID) error {
	args := m.Called(ctx, db, fieldID)
	return args.Error(0)
}

func (m *MockReviewWriteQueries) ListReviewedFieldIDsByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, db, userID)
	if v := args.Get(0); v != nil {
		return v.([]uuid.UUID), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestReviewRepositoryFindByIDForUpdate(t *testing.T) {
	row := builder.NewReviewBuilder().BuildInfra()

	t.Run("success", func(t *testing.T) {
		mockQueries := new(MockReviewWriteQueries)
		mockQueries.On("GetReviewForUpdate", mock.Anything, mock.Anything, row.ID).Return(row, nil)

		got, err := NewReviewRepository(mockQueries, nil).FindByIDForUpdate(context.Background(), row.ID)

		require.NoError(t, err)
		assert.Equal(t, row.ID, got.ID())
		assert.Equal(t, int(row.Rating), got.Rating().Value())
		assert.Equal(t, row.Comment, got.Comment().String())
	})

	t.Run("not found", func(t *testing.T) {
		mockQueries := new(MockReviewWriteQueries)
		mockQueries.On("GetReviewForUpdate", mock.Anything, mock.Anything, row.ID).Return(sqlc.Reviews{}, pgx.ErrNoRows)

		got, err := NewReviewRepository(mockQueries, nil).FindByIDForUpdate(context.Background(), row.ID)

		assert.Nil(t, got)
		assert.True(t, errs.Is(err, errs.ErrRecordNotFound))
	})

	t.Run("rating out of range in storage", func(t *testing.T) {
		bad := row
		bad.Rating = 9
		mockQueries := new(MockReviewWriteQueries)
		mockQueries.On("GetReviewForUpdate", mock.Anything, mock.Anything, row.ID).Return(bad, nil)

		_, err := NewReviewRepository(mockQueries, nil).FindByIDForUpdate(context.Background(), row.ID)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestReviewRepositoryCreate(t *testing.T) {
	rv, err := builder.NewReviewBuilder().WithRating(5).BuildDomain()
	require.NoError(t, err)

	tests := []struct {
		name      string
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "success"},
		{
			name:      "second review by same user",
			mockError: &pgconn.PgError{Code: "23505", ConstraintName: "reviews_user_field_key"},
			wantKind:  infra.KindDuplicateKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockReviewWriteQueries)
			mockQueries.On("CreateReview", mock.Anything, mock.Anything, sqlc.CreateReviewParams{
				ID:      rv.ID(),
				UserID:  rv.UserID(),
				FieldID: rv.FieldID(),
				Rating:  5,
				Comment: rv.Comment().String(),
			}).Return(sqlc.Reviews{}, tt.mockError)

			err := NewReviewRepository(mockQueries, nil).Create(context.Background(), rv)

			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind))
				assert.True(t, errs.Is(err, errs.ErrDuplicateRecord))
			} else {
				assert.NoError(t, err)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestReviewRepositoryDeleteMissing(t *testing.T) {
	id := uuid.New()
	mockQueries := new(MockReviewWriteQueries)
	mockQueries.On("DeleteReview", mock.Anything, mock.Anything, id).Return(int64(0), nil)

	err := NewReviewRepository(mockQueries, nil).Delete(context.Background(), id)

	assert.True(t, errs.Is(err, errs.ErrRecordNotFound))
}

func TestReviewRepositoryStats(t *testing.T) {
	userID, fieldID := uuid.New(), uuid.New()
	mockQueries := new(MockReviewWriteQueries)
	mockQueries.On("ListReviewedFieldIDsByUser", mock.Anything, mock.Anything, userID).Return([]uuid.UUID{fieldID}, nil)
	lock := mockQueries.On("LockFieldRatings", mock.Anything, mock.Anything, fieldID).Return(nil)
	mockQueries.On("RecalcFieldRatingStats", mock.Anything, mock.Anything, fieldID).Return(nil).NotBefore(lock)

	repo := NewReviewRepository(mockQueries, nil)
	ids, err := repo.ReviewedFieldIDs(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{fieldID}, ids)

	require.NoError(t, repo.RecalcFieldStats(context.Background(), fieldID))
	mockQueries.AssertExpectations(t)
}
