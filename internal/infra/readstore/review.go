package readstore

import (
	"context"

	"field-booking/internal/infra"
	sqlc "field-booking/internal/infra/sqlc/generated"
	"field-booking/internal/pkg/pgconv"
	"field-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReviewViewQueries interface {
	GetReviewView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ReviewViews, error)
	ListReviewViewsByField(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReviewViewsByFieldParams) ([]sqlc.ReviewViews, error)
}

type ReviewReadStore struct {
	queries ReviewViewQueries
}

func NewReviewReadStore(queries ReviewViewQueries) *ReviewReadStore {
	return &ReviewReadStore{
		queries: queries,
	}
}

func (r *ReviewReadStore) FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*queries.ReviewView, error) {
	row, err := r.queries.GetReviewView(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find review by ID", err)
	}
	return rowToReviewView(row), nil
}

func (r *ReviewReadStore) ListByField(ctx context.Context, db sqlc.DBTX, fieldID uuid.UUID, after *queries.ReviewKey, limit int) ([]*queries.ReviewView, error) {
	params := sqlc.ListReviewViewsByFieldParams{
		FieldID:  fieldID,
		RowLimit: int32(limit), // #nosec G115 -- bounded by queries.MaxListLimit
	}
	if after != nil {
		params.AfterCreatedAt = pgtype.Timestamptz{Time: after.CreatedAt, Valid: true}
		params.AfterID = pgconv.UUIDToPgtype(after.ID)
	}

	rows, err := r.queries.ListReviewViewsByField(ctx, db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews", err)
	}

	result := make([]*queries.ReviewView, 0, len(rows))
	for _, row := range rows {
		result = append(result, rowToReviewView(row))
	}
	return result, nil
}

func rowToReviewView(row sqlc.ReviewViews) *queries.ReviewView {
	return &queries.ReviewView{
		ID:      row.ID,
		FieldID: row.FieldID,
		Author: queries.ReviewAuthor{
			ID:   row.UserID,
			Name: row.UserName,
		},
		Rating:    int(row.Rating),
		Comment:   row.Comment,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
