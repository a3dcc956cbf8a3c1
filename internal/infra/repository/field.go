package repository

import (
	"context"

	"field-booking/internal/domain/field"
	"field-booking/internal/infra"
	"field-booking/internal/infra/repository/converter"
	sqlc "field-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type FieldQueries interface {
	CreateField(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateFieldParams) (sqlc.Fields, error)
	GetFieldByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Fields, error)
	UpdateField(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateFieldParams) (sqlc.Fields, error)
}

type FieldRepository struct {
	queries FieldQueries
	db      sqlc.DBTX
}

func NewFieldRepository(queries FieldQueries, db sqlc.DBTX) *FieldRepository {
	return &FieldRepository{
		queries: queries,
		db:      db,
	}
}

func (r *FieldRepository) FindByID(ctx context.Context, id uuid.UUID) (*field.Field, error) {
	row, err := r.queries.GetFieldByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to find field by ID", err)
	}
	f, err := converter.FieldFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load field", err)
	}
	return f, nil
}

func (r *FieldRepository) Create(ctx context.Context, f *field.Field) error {
	params, err := converter.FieldToCreateParams(f)
	if err != nil {
		return infra.WrapRepoErr("failed to convert field", err)
	}
	if _, err := r.queries.CreateField(ctx, r.db, params); err != nil {
		return infra.ClassifyPgErr("failed to create field", err)
	}
	return nil
}

func (r *FieldRepository) Update(ctx context.Context, f *field.Field) error {
	params, err := converter.FieldToUpdateParams(f)
	if err != nil {
		return infra.WrapRepoErr("failed to convert field", err)
	}
	if _, err := r.queries.UpdateField(ctx, r.db, params); err != nil {
		return infra.ClassifyPgErr("failed to update field", err)
	}
	return nil
}
