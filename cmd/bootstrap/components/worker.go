package components

import (
	"context"
	"log/slog"

	"transit-booking/internal/usecase/commands"
	"transit-booking/internal/usecase/shared"
	"transit-booking/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		fx.Annotate(
			worker.NewSignal,
			fx.As(new(shared.DispatchSignal)),
			fx.As(fx.Self()),
		),
		worker.NewOutboxDispatcher,
		worker.NewHoldSweeper,
	),
	fx.Invoke(startWorkers),
)

func startWorkers(
	lc fx.Lifecycle,
	dispatcher *worker.OutboxDispatcher,
	sweeper *worker.HoldSweeper,
	recorder *commands.BookingRecorder,
	logger *slog.Logger,
) {
	group := worker.NewGroup()

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			group.Go(dispatcher.Run)
			group.Go(sweeper.Run)
			group.Go(recorder.Run)
			logger.Info("background workers started")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping background workers")
			return group.Stop(ctx)
		},
	})
}
