package converter

import (
	"fmt"

	"field-booking/internal/domain/user"
	sqlc "field-booking/internal/infra/sqlc/generated"
	"field-booking/internal/pkg/pgconv"
)

func UserToCreateParams(u *user.User) sqlc.CreateUserParams {
	return sqlc.CreateUserParams{
		ID:           u.ID(),
		Name:         u.Name().Value(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
	}
}

func UserToUpdateParams(u *user.User) sqlc.UpdateUserParams {
	return sqlc.UpdateUserParams{
		ID:           u.ID(),
		Name:         u.Name().Value(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
	}
}

func UserFromRow(row sqlc.Users) (*user.User, error) {
	name, err := user.NewName(row.Name)
	if err != nil {
		return nil, fmt.Errorf("stored user %s: %w", row.ID, err)
	}
	email, err := user.NewEmail(row.Email)
	if err != nil {
		return nil, fmt.Errorf("stored user %s: %w", row.ID, err)
	}
	role, err := user.NewRole(row.Role)
	if err != nil {
		return nil, fmt.Errorf("stored user %s: %w", row.ID, err)
	}

	return user.ReconstructUser(
		row.ID,
		name,
		email,
		row.PasswordHash,
		role,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
