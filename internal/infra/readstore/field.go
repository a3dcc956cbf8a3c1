package readstore

import (
	"context"
	"math"

	"field-booking/internal/infra"
	sqlc "field-booking/internal/infra/sqlc/generated"
	"field-booking/internal/pkg/pgconv"
	"field-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type FieldReadQueries interface {
	GetFieldView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FieldViews, error)
	ListActiveFieldViews(ctx context.Context, db sqlc.DBTX, sportType pgtype.Text) ([]sqlc.FieldViews, error)
}

type FieldReadStore struct {
	queries FieldReadQueries
}

func NewFieldReadStore(queries FieldReadQueries) *FieldReadStore {
	return &FieldReadStore{
		queries: queries,
	}
}

func (r *FieldReadStore) FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*queries.FieldView, error) {
	row, err := r.queries.GetFieldView(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("field not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find field by ID", err)
	}
	return rowToFieldView(row)
}

// ListActive returns active fields, all sports when sportType is nil.
func (r *FieldReadStore) ListActive(ctx context.Context, db sqlc.DBTX, sportType *string) ([]*queries.FieldView, error) {
	rows, err := r.queries.ListActiveFieldViews(ctx, db, pgconv.StringPtrToPgtype(sportType))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list fields", err)
	}

	result := make([]*queries.FieldView, 0, len(rows))
	for _, row := range rows {
		view, err := rowToFieldView(row)
		if err != nil {
			return nil, err
		}
		result = append(result, view)
	}
	return result, nil
}

func rowToFieldView(row sqlc.FieldViews) (*queries.FieldView, error) {
	price, err := priceFromNumeric(row.PricePerHour)
	if err != nil {
		return nil, err
	}
	return &queries.FieldView{
		ID:            row.ID,
		Name:          row.Name,
		Location:      row.Location,
		SportType:     row.SportType,
		PricePerHour:  price,
		Active:        row.Active,
		ReviewCount:   int(row.ReviewCount),
		AverageRating: math.Round(row.AverageRating*100) / 100,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
