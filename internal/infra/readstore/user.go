package readstore

import (
	"context"

	"field-booking/internal/infra"
	sqlc "field-booking/internal/infra/sqlc/generated"
	"field-booking/internal/pkg/pgconv"
	"field-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadQueries interface {
	FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
	ListUsers(ctx context.Context, db sqlc.DBTX) ([]sqlc.Users, error)
}

type UserReadStore struct {
	queries UserReadQueries
}

func NewUserReadStore(queries UserReadQueries) *UserReadStore {
	return &UserReadStore{
		queries: queries,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*queries.UserView, error) {
	row, err := r.queries.FindUserByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return toUserView(row), nil
}

func (r *UserReadStore) List(ctx context.Context, db sqlc.DBTX) ([]*queries.UserView, error) {
	rows, err := r.queries.ListUsers(ctx, db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	result := make([]*queries.UserView, len(rows))
	for i, row := range rows {
		result[i] = toUserView(row)
	}
	return result, nil
}

// the password hash never leaves the store
func toUserView(row sqlc.Users) *queries.UserView {
	return &queries.UserView{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		Role:      row.Role,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
