package queries

import (
	"context"

	"field-booking/internal/domain/authz"
	sqlc "field-booking/internal/infra/sqlc/generated"
	"field-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error)
	List(ctx context.Context, actor authz.Actor) ([]*UserView, error)
	GetByID(ctx context.Context, actor authz.Actor, id uuid.UUID) (*UserView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*UserView, error)
	List(ctx context.Context, db sqlc.DBTX) ([]*UserView, error)
}

type userQueriesImpl struct {
	uow       shared.UnitOfWork
	readStore UserReadStore
}

func NewUserQueries(uow shared.UnitOfWork, readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		uow:       uow,
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error) {
	return q.find(ctx, userID)
}

func (q *userQueriesImpl) List(ctx context.Context, actor authz.Actor) ([]*UserView, error) {
	if err := authz.Require(actor, authz.ManageUsers, uuid.Nil); err != nil {
		return nil, err
	}

	var users []*UserView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		users, err = q.readStore.List(ctx, db)
		return err
	})
	return users, err
}

func (q *userQueriesImpl) GetByID(ctx context.Context, actor authz.Actor, id uuid.UUID) (*UserView, error) {
	if err := authz.Require(actor, authz.ManageUsers, uuid.Nil); err != nil {
		return nil, err
	}
	return q.find(ctx, id)
}

func (q *userQueriesImpl) find(ctx context.Context, id uuid.UUID) (*UserView, error) {
	var view *UserView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		v, err := q.readStore.FindByID(ctx, db, id)
		if err != nil {
			return shared.NotFoundAs(err, shared.ErrUserNotFound)
		}
		view = v
		return nil
	})
	return view, err
}
