package usecase

import (
	"boat-reservation/internal/domain/user"
	"boat-reservation/internal/pkg/jwt"
	"boat-reservation/internal/usecase/shared"
)

// TokenValidator turns a bearer token into the calling actor.
type TokenValidator interface {
	ValidateToken(tokenString string) (shared.Actor, *jwt.Claims, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (shared.Actor, *jwt.Claims, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return shared.Actor{}, nil, err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return shared.Actor{}, nil, jwt.ErrInvalidToken
	}

	userID, err := claims.UserID()
	if err != nil {
		return shared.Actor{}, nil, jwt.ErrInvalidToken
	}

	return shared.NewActor(userID, role), claims, nil
}
