package commands

import (
	"context"
	"log/slog"
	"time"

	"field-booking/internal/domain/auth"
	"field-booking/internal/domain/user"
	"field-booking/internal/pkg/clock"
	"field-booking/internal/pkg/errs"
	"field-booking/internal/pkg/jwt"
	"field-booking/internal/pkg/password"
	"field-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = auth.ErrInvalidCredentials
	ErrTokenGeneration    = errs.New("token generation failed")
)

type RegisterRequest struct {
	Name     string
	Email    string
	Password string
}

type LoginRequest struct {
	Email    string
	Password string
}

type LoginResult struct {
	UserID      uuid.UUID
	Role        user.Role
	AccessToken string
	ExpiresAt   time.Time
}

type AuthCommands interface {
	// Register always creates a plain user.
	Register(ctx context.Context, req RegisterRequest) (uuid.UUID, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
		clock:      clk,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, req RegisterRequest) (uuid.UUID, error) {
	u, err := newUser(req.Name, req.Email, req.Password, user.RoleUser)
	if err != nil {
		return uuid.Nil, err
	}
	if err := createUser(ctx, a.uow, u); err != nil {
		return uuid.Nil, err
	}
	return u.ID(), nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	credentials, err := auth.NewCredentials(req.Email, req.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	var found *user.User
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Users().FindByEmail(ctx, credentials.Email())
		if err != nil {
			return err
		}
		found = u
		return nil
	})
	if err != nil {
		// Same error as a password mismatch to prevent user enumeration
		if errs.Is(err, errs.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := password.ComparePassword(found.PasswordHash(), credentials.Password()); err != nil {
		slog.DebugContext(ctx, "password mismatch", "user_id", found.ID().String())
		return nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(found.ID(), found.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		UserID:      found.ID(),
		Role:        found.Role(),
		AccessToken: token,
		ExpiresAt:   a.clock.Now().Add(a.jwtService.TokenDuration()),
	}, nil
}
