//go:build unit

package queries_test

import (
	"context"
	"testing"

	"field-booking/internal/domain/authz"
	"field-booking/internal/domain/user"
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

type MockUserReadStore struct {
	mock.Mock
}

func (m *MockUserReadStore) FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*queries.UserView, error) {
	args := m.Called(ctx, db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queries.UserView), args.Error(1)
}

func (m *MockUserReadStore) List(ctx context.Context, db sqlc.DBTX) ([]*queries.UserView, error) {
	args := m.Called(ctx, db)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*queries.UserView), args.Error(1)
}

func TestUserQueries(t *testing.T) {
	ctx := context.Background()
	view := builder.NewUserBuilder().BuildView()
	admin := authz.NewActor(uuid.New(), user.RoleAdmin)
	regular := authz.NewActor(view.ID, user.RoleUser)

	store := new(MockUserReadStore)
	store.On("FindByID", mock.Anything, mock.Anything, view.ID).Return(view, nil)
	store.On("FindByID", mock.Anything, mock.Anything, mock.Anything).Return(nil, notFound)
	store.On("List", mock.Anything, mock.Anything).Return([]*queries.UserView{view}, nil)
	q := queries.NewUserQueries(memuow.New(), store)

	t.Run("current user", func(t *testing.T) {
		got, err := q.GetCurrentUser(ctx, view.ID)
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("current user deleted meanwhile", func(t *testing.T) {
		_, err := q.GetCurrentUser(ctx, uuid.New())
		assert.True(t, errs.Is(err, shared.ErrUserNotFound))
	})

	t.Run("admin lists users", func(t *testing.T) {
		got, err := q.List(ctx, admin)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("non-admin cannot list or read others", func(t *testing.T) {
		_, err := q.List(ctx, regular)
		assert.True(t, errs.Is(err, authz.ErrForbidden))

		_, err = q.GetByID(ctx, regular, view.ID)
		assert.True(t, errs.Is(err, authz.ErrForbidden))
	})
}
