package usecase

import (
	"field-booking/internal/domain/authz"
	"field-booking/internal/domain/user"
	"field-booking/internal/pkg/jwt"
)

// TokenValidator resolves a bearer token into the acting principal.
type TokenValidator interface {
	ValidateToken(tokenString string) (authz.Actor, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (authz.Actor, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return authz.Actor{}, err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return authz.Actor{}, jwt.ErrInvalidToken
	}

	return authz.NewActor(claims.UserID, role), nil
}
