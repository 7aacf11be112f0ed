package bootstrap

import (
	"log/slog"

	"transit-booking/internal/pkg/config"
	"transit-booking/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

// HS256 keys shorter than the hash output weaken the signature
const minSecretBytes = 32

func NewJWTService(cfg config.Config, logger *slog.Logger) *jwt.Service {
	if len(cfg.JWT.Secret) < minSecretBytes {
		logger.Warn("JWT_SECRET is shorter than recommended", "min_bytes", minSecretBytes)
	}
	if cfg.JWT.Issuer == "" {
		logger.Warn("JWT_ISSUER empty; operator tokens from any issuer sharing the secret are accepted")
	}
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Issuer)
}
