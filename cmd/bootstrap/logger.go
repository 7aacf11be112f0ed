package bootstrap

import (
	"log/slog"

	"transit-booking/internal/handler/middleware"
	"transit-booking/internal/pkg/config"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log)
}

// FxEventLogger routes fx lifecycle events through the service logger; hook failures during
// shutdown (a worker still draining) show up next to the worker's own records.
func FxEventLogger(logger *slog.Logger) fxevent.Logger {
	l := &fxevent.SlogLogger{Logger: logger.With("component", "fx")}
	l.UseLogLevel(slog.LevelDebug)
	return l
}
