package usecase

import (
	"transit-booking/internal/domain/principal"
	"transit-booking/internal/pkg/jwt"
)

// TokenValidator turns a bearer token into the authorized principal consumed by the operator routes.
type TokenValidator interface {
	ValidateToken(tokenString string) (principal.Principal, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (principal.Principal, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return principal.Principal{}, err
	}
	// a signed token with an unknown role is still rejected here; roles are owned by the auth service
	return principal.New(claims.UserID, claims.Role)
}
