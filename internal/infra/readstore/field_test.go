//go:build unit

package readstore

import (
	"context"
	"testing"

	"field-booking/internal/infra"
	sqlc "field-booking/internal/infra/sqlc/generated"
	"field-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockFieldReadQueries struct {
	mock.Mock
}

func (m *MockFieldReadQueries) GetFieldView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FieldViews, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.FieldViews), args.Error(1)
}

func (m *MockFieldReadQueries) ListActiveFieldViews(ctx context.Context, db sqlc.DBTX, sportType pgtype.Text) ([]sqlc.FieldViews, error) {
	args := m.Called(ctx, db, sportType)
	return args.Get(0).([]sqlc.FieldViews), args.Error(1)
}

func TestFieldReadStoreCarriesRatingSummary(t *testing.T) {
	row := builder.NewFieldBuilder().WithRating(3, 4.3333333).BuildViewInfra()

	mockQueries := new(MockFieldReadQueries)
	mockQueries.On("GetFieldView", mock.Anything, mock.Anything, row.ID).Return(row, nil)

	view, err := NewFieldReadStore(mockQueries).FindByID(context.Background(), nil, row.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, view.ReviewCount)
	assert.InDelta(t, 4.33, view.AverageRating, 1e-9)
	assert.InDelta(t, 50, view.PricePerHour, 1e-9)
}

func TestFieldReadStoreListActive(t *testing.T) {
	t.Run("nil sport lists every sport", func(t *testing.T) {
		mockQueries := new(MockFieldReadQueries)
		mockQueries.On("ListActiveFieldViews", mock.Anything, mock.Anything, pgtype.Text{}).
			Return([]sqlc.FieldViews{builder.NewFieldBuilder().BuildViewInfra()}, nil)

		views, err := NewFieldReadStore(mockQueries).ListActive(context.Background(), nil, nil)
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Zero(t, views[0].ReviewCount)
		mockQueries.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockQueries := new(MockFieldReadQueries)
		mockQueries.On("GetFieldView", mock.Anything, mock.Anything, mock.Anything).Return(sqlc.FieldViews{}, pgx.ErrNoRows)

		_, err := NewFieldReadStore(mockQueries).FindByID(context.Background(), nil, uuid.New())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
