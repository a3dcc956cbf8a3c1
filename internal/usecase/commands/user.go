package commands

import (
	"context"
	"log/slog"

	"field-booking/internal/domain/authz"
	"field-booking/internal/domain/user"
	"field-booking/internal/pkg/errs"
	"field-booking/internal/pkg/password"
	"field-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound       = shared.ErrUserNotFound
	ErrEmailAlreadyExists = errs.New("email already registered")
)

type CreateUserRequest struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type UpdateUserRequest struct {
	Name     *string
	Email    *string
	Password *string
	Role     *string
}

// UserCommands is the administrative user management surface.
type UserCommands interface {
	Create(ctx context.Context, actor authz.Actor, req CreateUserRequest) (uuid.UUID, error)
	Update(ctx context.Context, actor authz.Actor, userID uuid.UUID, req UpdateUserRequest) error
	Delete(ctx context.Context, actor authz.Actor, userID uuid.UUID) error
}

type userCommandsImpl struct {
	uow    shared.UnitOfWork
	cache  shared.FieldCache
	logger *slog.Logger
}

func NewUserCommands(uow shared.UnitOfWork, cache shared.FieldCache, logger *slog.Logger) UserCommands {
	return &userCommandsImpl{uow: uow, cache: cache, logger: logger}
}

func (uc *userCommandsImpl) Create(ctx context.Context, actor authz.Actor, req CreateUserRequest) (uuid.UUID, error) {
	if err := authz.Require(actor, authz.ManageUsers, uuid.Nil); err != nil {
		return uuid.Nil, err
	}
	role := user.RoleUser
	if req.Role != "" {
		r, err := user.NewRole(req.Role)
		if err != nil {
			return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
		}
		role = r
	}
	u, err := newUser(req.Name, req.Email, req.Password, role)
	if err != nil {
		return uuid.Nil, err
	}
	if err := createUser(ctx, uc.uow, u); err != nil {
		return uuid.Nil, err
	}
	return u.ID(), nil
}

func (uc *userCommandsImpl) Update(ctx context.Context, actor authz.Actor, userID uuid.UUID, req UpdateUserRequest) error {
	if err := authz.Require(actor, authz.ManageUsers, uuid.Nil); err != nil {
		return err
	}

	var (
		name  *user.Name
		email *user.Email
		role  *user.Role
		hash  string
	)
	if req.Name != nil {
		n, err := user.NewName(*req.Name)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		name = &n
	}
	if req.Email != nil {
		e, err := user.NewEmail(*req.Email)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		email = &e
	}
	if req.Role != nil {
		r, err := user.NewRole(*req.Role)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		role = &r
	}
	if req.Password != nil {
		pw, err := user.NewPassword(*req.Password)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if hash, err = password.HashPassword(pw.Value()); err != nil {
			return errs.Wrap(err, "failed to hash password")
		}
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Users().FindByID(ctx, userID)
		if err != nil {
			return shared.NotFoundAs(err, shared.ErrUserNotFound)
		}
		if name != nil {
			u.Rename(*name)
		}
		if email != nil {
			u.ChangeEmail(*email)
		}
		if role != nil {
			u.ChangeRole(*role)
		}
		if hash != "" {
			u.ChangePasswordHash(hash)
		}
		if err := tx.Users().Update(ctx, u); err != nil {
			return asEmailTaken(err)
		}
		return nil
	})
}

// Delete removes the user together with their bookings and reviews, and
// refreshes the rating summary of every field they had reviewed.
func (uc *userCommandsImpl) Delete(ctx context.Context, actor authz.Actor, userID uuid.UUID) error {
	if err := authz.Require(actor, authz.ManageUsers, uuid.Nil); err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		reviewed, err := tx.Reviews().ReviewedFieldIDs(ctx, userID)
		if err != nil {
			return err
		}
		if err := tx.Users().Delete(ctx, userID); err != nil {
			return shared.NotFoundAs(err, shared.ErrUserNotFound)
		}
		for _, fieldID := range reviewed {
			if err := tx.Reviews().RecalcFieldStats(ctx, fieldID); err != nil {
				return err
			}
		}
		if len(reviewed) > 0 {
			tx.AfterCommit(func(ctx context.Context) {
				if err := uc.cache.Invalidate(ctx); err != nil {
					uc.logger.WarnContext(ctx, "failed to invalidate field cache", "error", err.Error())
				}
			})
		}
		return nil
	})
}

func newUser(nameStr, emailStr, passwordStr string, role user.Role) (*user.User, error) {
	name, err := user.NewName(nameStr)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	pw, err := user.NewPassword(passwordStr)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}
	return user.NewUser(name, email, hash, role), nil
}

func createUser(ctx context.Context, uow shared.UnitOfWork, u *user.User) error {
	return uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().Create(ctx, u); err != nil {
			return asEmailTaken(err)
		}
		return nil
	})
}

func asEmailTaken(err error) error {
	if errs.Is(err, errs.ErrDuplicateRecord) {
		return errs.Mark(err, ErrEmailAlreadyExists)
	}
	return err
}
