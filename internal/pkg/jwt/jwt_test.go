//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"transit-booking/internal/domain/principal"
	"transit-booking/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_ValidateToken(t *testing.T) {
	const secret = "test-secret"
	userID := uuid.New()
	svc := jwt.NewService(secret, "transit-operator-auth")

	t.Run("valid token round-trips principal claims", func(t *testing.T) {
		token, err := svc.GenerateToken(userID, principal.RoleAdmin, time.Hour)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "admin", claims.Role)
	})

	t.Run("expired beyond leeway", func(t *testing.T) {
		token, err := svc.GenerateToken(userID, principal.RoleOperator, -time.Minute)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		token, err := jwt.NewService(secret, "someone-else").GenerateToken(userID, principal.RoleOperator, time.Hour)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := jwt.NewService("other-secret", "transit-operator-auth").GenerateToken(userID, principal.RoleOperator, time.Hour)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("non-HS256 algorithm", func(t *testing.T) {
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS512, jwt.Claims{
			UserID: userID,
			Role:   "admin",
			RegisteredClaims: gojwt.RegisteredClaims{
				Issuer:    "transit-operator-auth",
				ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}).SignedString([]byte(secret))
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("missing expiry", func(t *testing.T) {
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, jwt.Claims{
			UserID:           userID,
			Role:             "admin",
			RegisteredClaims: gojwt.RegisteredClaims{Issuer: "transit-operator-auth"},
		}).SignedString([]byte(secret))
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
