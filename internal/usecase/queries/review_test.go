//go:build unit

package queries_test

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	sqlc "field-booking/internal/infra/sqlc/generated"
	"field-booking/internal/pkg/errs"
	"field-booking/internal/usecase/queries"
	"field-booking/internal/usecase/shared"
	"field-booking/tests/common/builder"
	"field-booking/tests/common/memuow"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReviewReadStore struct {
	mock.Mock
}

func (m *MockReviewReadStore) FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*queries.ReviewView, error) {
	args := m.Called(ctx, db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queries.ReviewView), args.Error(1)
}

func (m *MockReviewReadStore) ListByField(ctx context.Context, db sqlc.DBTX, fieldID uuid.UUID, after *queries.ReviewKey, limit int) ([]*queries.ReviewView, error) {
	args := m.Called(ctx, db, fieldID, after, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*queries.ReviewView), args.Error(1)
}

// reviewViews returns n views of one field, newest first, one minute apart.
func reviewViews(fieldID uuid.UUID, n int) []*queries.ReviewView {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	out := make([]*queries.ReviewView, n)
	for i := range out {
		v := builder.NewReviewBuilder().WithFieldID(fieldID).BuildView()
		v.CreatedAt = base.Add(-time.Duration(i) * time.Minute)
		out[i] = v
	}
	return out
}

func TestReviewQueriesGetByID(t *testing.T) {
	view := builder.NewReviewBuilder().BuildView()

	t.Run("found", func(t *testing.T) {
		store := new(MockReviewReadStore)
		store.On("FindByID", mock.Anything, mock.Anything, view.ID).Return(view, nil)

		got, err := queries.NewReviewQueries(memuow.New(), store, new(MockFieldReadStore)).GetByID(context.Background(), view.ID)

		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("not found", func(t *testing.T) {
		store := new(MockReviewReadStore)
		store.On("FindByID", mock.Anything, mock.Anything, mock.Anything).Return(nil, notFound)

		_, err := queries.NewReviewQueries(memuow.New(), store, new(MockFieldReadStore)).GetByID(context.Background(), uuid.New())

		assert.True(t, errs.Is(err, shared.ErrReviewNotFound))
	})
}

func TestReviewQueriesListByField(t *testing.T) {
	ctx := context.Background()
	fieldView := builder.NewFieldBuilder().BuildView()
	fieldID := fieldView.ID

	newQueries := func(reviews *MockReviewReadStore) queries.ReviewQueries {
		fields := new(MockFieldReadStore)
		fields.On("FindByID", mock.Anything, mock.Anything, fieldID).Return(fieldView, nil)
		fields.On("FindByID", mock.Anything, mock.Anything, mock.Anything).Return(nil, notFound)
		return queries.NewReviewQueries(memuow.New(), reviews, fields)
	}

	t.Run("last page has no cursor", func(t *testing.T) {
		rows := reviewViews(fieldID, 2)
		reviews := new(MockReviewReadStore)
		reviews.On("ListByField", mock.Anything, mock.Anything, fieldID, (*queries.ReviewKey)(nil), 3).Return(rows, nil)

		page, err := newQueries(reviews).ListByField(ctx, fieldID, "", 2)

		require.NoError(t, err)
		assert.Len(t, page.Reviews, 2)
		assert.Empty(t, page.NextCursor)
	})

	t.Run("full page points past its last row", func(t *testing.T) {
		rows := reviewViews(fieldID, 3)
		reviews := new(MockReviewReadStore)
		reviews.On("ListByField", mock.Anything, mock.Anything, fieldID, (*queries.ReviewKey)(nil), 3).Return(rows, nil)

		page, err := newQueries(reviews).ListByField(ctx, fieldID, "", 2)

		require.NoError(t, err)
		require.Len(t, page.Reviews, 2)
		createdAt, id, err := queries.DecodeAfterCursor(page.NextCursor)
		require.NoError(t, err)
		assert.Equal(t, rows[1].ID, id)
		assert.True(t, rows[1].CreatedAt.Equal(createdAt))
	})

	t.Run("cursor becomes the keyset position", func(t *testing.T) {
		after := reviewViews(fieldID, 1)[0]
		reviews := new(MockReviewReadStore)
		reviews.On("ListByField", mock.Anything, mock.Anything, fieldID, mock.MatchedBy(func(k *queries.ReviewKey) bool {
			return k != nil && k.ID == after.ID && k.CreatedAt.Equal(after.CreatedAt)
		}), queries.DefaultListLimit+1).Return([]*queries.ReviewView{}, nil)

		page, err := newQueries(reviews).ListByField(ctx, fieldID, queries.EncodeAfterCursor(after.CreatedAt, after.ID), 0)

		require.NoError(t, err)
		assert.Empty(t, page.Reviews)
		reviews.AssertExpectations(t)
	})

	t.Run("oversized limit is clamped", func(t *testing.T) {
		reviews := new(MockReviewReadStore)
		reviews.On("ListByField", mock.Anything, mock.Anything, fieldID, (*queries.ReviewKey)(nil), queries.MaxListLimit+1).Return([]*queries.ReviewView{}, nil)

		_, err := newQueries(reviews).ListByField(ctx, fieldID, "", 10_000)

		require.NoError(t, err)
		reviews.AssertExpectations(t)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := newQueries(new(MockReviewReadStore)).ListByField(ctx, uuid.New(), "", 10)
		assert.True(t, errs.Is(err, shared.ErrFieldNotFound))
	})

	t.Run("malformed cursor", func(t *testing.T) {
		reviews := new(MockReviewReadStore)
		_, err := newQueries(reviews).ListByField(ctx, fieldID, "not-a-cursor", 10)

		assert.True(t, errs.Is(err, queries.ErrInvalidCursor))
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
		reviews.AssertNotCalled(t, "ListByField")
	})
}

func TestDecodeAfterCursor(t *testing.T) {
	id := uuid.New()
	at := time.Date(2026, 3, 1, 12, 30, 0, 123456000, time.UTC)

	cases := []struct {
		name    string
		cursor  string
		wantErr bool
	}{
		{name: "round trip", cursor: queries.EncodeAfterCursor(at, id)},
		{name: "empty", cursor: "", wantErr: true},
		{name: "not base64", cursor: "%%%", wantErr: true},
		{name: "unknown version", cursor: base64.URLEncoding.EncodeToString([]byte("v2:1-" + id.String())), wantErr: true},
		{name: "bad uuid", cursor: base64.URLEncoding.EncodeToString([]byte("v1:1-nope")), wantErr: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			gotAt, gotID, err := queries.DecodeAfterCursor(c.cursor)
			if c.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, id, gotID)
			assert.True(t, at.Equal(gotAt))
		})
	}
}
