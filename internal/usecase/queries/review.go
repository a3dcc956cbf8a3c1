package queries

import (
	"context"
	"time"

	sqlc "field-booking/internal/infra/sqlc/generated"
	"field-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReviewQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	// ListByField pages through a field's reviews, newest first. after is the
	// NextCursor of the previous page, empty for the first one.
	ListByField(ctx context.Context, fieldID uuid.UUID, after string, limit int) (*ReviewPage, error)
}

// ReviewKey is the keyset position of a review within a field listing.
type ReviewKey struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

type ReviewReadStore interface {
	FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*ReviewView, error)
	// ListByField returns at most limit reviews strictly after the key, or
	// from the top when after is nil.
	ListByField(ctx context.Context, db sqlc.DBTX, fieldID uuid.UUID, after *ReviewKey, limit int) ([]*ReviewView, error)
}

type reviewQueriesImpl struct {
	uow     shared.UnitOfWork
	reviews ReviewReadStore
	fields  FieldReadStore
}

func NewReviewQueries(uow shared.UnitOfWork, reviews ReviewReadStore, fields FieldReadStore) ReviewQueries {
	return &reviewQueriesImpl{
		uow:     uow,
		reviews: reviews,
		fields:  fields,
	}
}

func (q *reviewQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error) {
	var view *ReviewView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		v, err := q.reviews.FindByID(ctx, db, id)
		if err != nil {
			return shared.NotFoundAs(err, shared.ErrReviewNotFound)
		}
		view = v
		return nil
	})
	return view, err
}

func (q *reviewQueriesImpl) ListByField(ctx context.Context, fieldID uuid.UUID, after string, limit int) (*ReviewPage, error) {
	var key *ReviewKey
	if after != "" {
		createdAt, id, err := DecodeAfterCursor(after)
		if err != nil {
			return nil, ErrInvalidCursor
		}
		key = &ReviewKey{CreatedAt: createdAt, ID: id}
	}
	limit = ValidateLimit(limit)

	var rows []*ReviewView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		if _, err := q.fields.FindByID(ctx, db, fieldID); err != nil {
			return shared.NotFoundAs(err, shared.ErrFieldNotFound)
		}
		var err error
		// one extra row tells whether another page exists
		rows, err = q.reviews.ListByField(ctx, db, fieldID, key, limit+1)
		return err
	})
	if err != nil {
		return nil, err
	}

	page := &ReviewPage{Reviews: rows}
	if len(rows) > limit {
		last := rows[limit-1]
		page.NextCursor = EncodeAfterCursor(last.CreatedAt, last.ID)
		page.Reviews = rows[:limit]
	}
	return page, nil
}
