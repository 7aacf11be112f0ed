package bootstrap

import (
	"log/slog"

	"transit-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(LogBookingConfig),
)

// LogBookingConfig records the settings that change booking outcomes, so an incident can be
// matched against the timeouts that were in force.
func LogBookingConfig(cfg config.Config, logger *slog.Logger) {
	logger.Info("booking configuration",
		"ledger_backend", cfg.Booking.LedgerBackend,
		"hold_timeout", cfg.Booking.HoldTimeout,
		"payment_timeout", cfg.Booking.PaymentTimeout,
		"persist_max_attempts", cfg.Booking.PersistMaxAttempts,
		"outbox_max_attempts", cfg.Outbox.MaxAttempts,
		"payment_sandbox", cfg.Payment.Sandbox)

	if gin.Mode() == gin.ReleaseMode && cfg.Payment.Sandbox {
		logger.Error("payment sandbox enabled in release mode; every charge is approved", "alert", true)
	}
	if cfg.Booking.LedgerBackend == config.LedgerBackendMemory {
		logger.Warn("in-memory seat ledger selected; run a single instance only")
	}
}
