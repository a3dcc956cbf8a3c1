package repository

import (
	"context"

	"field-booking/internal/domain/user"
	"field-booking/internal/infra"
	"field-booking/internal/infra/repository/converter"
	sqlc "field-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UserQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (sqlc.Users, error)
	FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
	FindUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error)
	UpdateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserParams) (sqlc.Users, error)
	DeleteUser(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type UserRepository struct {
	queries UserQueries
	db      sqlc.DBTX
}

func NewUserRepository(queries UserQueries, db sqlc.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to find user by ID", err)
	}
	u, err := converter.UserFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load user", err)
	}
	return u, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*user.User, error) {
	row, err := r.queries.FindUserByEmail(ctx, r.db, email.Value())
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to find user by email", err)
	}
	u, err := converter.UserFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load user", err)
	}
	return u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	if _, err := r.queries.CreateUser(ctx, r.db, converter.UserToCreateParams(u)); err != nil {
		return infra.ClassifyPgErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	if _, err := r.queries.UpdateUser(ctx, r.db, converter.UserToUpdateParams(u)); err != nil {
		return infra.ClassifyPgErr("failed to update user", err)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.queries.DeleteUser(ctx, r.db, id)
	if err != nil {
		return infra.ClassifyPgErr("failed to delete user", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
