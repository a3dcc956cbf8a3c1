package queries

//go:generate mockgen -destination=../../../tests/mock/queries/queries_mock.go -package=queriesmock field-booking/internal/usecase/queries BookingQueries,FieldQueries,ReviewQueries,UserQueries

import (
	"context"
	"time"

	"field-booking/internal/domain/authz"
	sqlc "field-booking/internal/infra/sqlc/generated"
	"field-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingQueries interface {
	GetByID(ctx context.Context, actor authz.Actor, id uuid.UUID) (*BookingView, error)
	// List is narrowed to the actor's own bookings unless they may list all.
	List(ctx context.Context, actor authz.Actor, filter BookingFilter) ([]*BookingView, error)
	// ListMine returns the actor's bookings, latest first.
	ListMine(ctx context.Context, actor authz.Actor) ([]*BookingView, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, db sqlc.DBTX, filter BookingFilter) ([]*BookingView, error)
	ActiveSlots(ctx context.Context, db sqlc.DBTX, fieldID uuid.UUID, date time.Time) ([]string, error)
}

type bookingQueriesImpl struct {
	uow       shared.UnitOfWork
	readStore BookingReadStore
}

func NewBookingQueries(uow shared.UnitOfWork, readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{
		uow:       uow,
		readStore: readStore,
	}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor authz.Actor, id uuid.UUID) (*BookingView, error) {
	var view *BookingView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		v, err := q.readStore.FindByID(ctx, db, id)
		if err != nil {
			return shared.NotFoundAs(err, shared.ErrBookingNotFound)
		}
		view = v
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := authz.Require(actor, authz.ReadBooking, view.User.ID); err != nil {
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) List(ctx context.Context, actor authz.Actor, filter BookingFilter) ([]*BookingView, error) {
	if !authz.Can(actor, authz.ListAllBookings, uuid.Nil) {
		own := actor.ID
		filter.UserID = &own
	}
	return q.list(ctx, filter)
}

func (q *bookingQueriesImpl) ListMine(ctx context.Context, actor authz.Actor) ([]*BookingView, error) {
	own := actor.ID
	return q.list(ctx, BookingFilter{UserID: &own, Descending: true})
}

func (q *bookingQueriesImpl) list(ctx context.Context, filter BookingFilter) ([]*BookingView, error) {
	var views []*BookingView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		views, err = q.readStore.List(ctx, db, filter)
		return err
	})
	return views, err
}
