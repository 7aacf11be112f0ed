package components

import (
	"transit-booking/internal/pkg/clock"
	"transit-booking/internal/usecase"
	"transit-booking/internal/usecase/commands"
	"transit-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewFareResolver,
		commands.NewBookingFinalizer,
		fx.Annotate(
			commands.NewBookingRecorder,
			fx.As(new(commands.PendingRecorder)),
			fx.As(fx.Self()),
		),
		commands.NewBookingUseCase,
		commands.NewCancellationUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewSeatAvailabilityQueries,
		queries.NewBusSearchQueries,
		queries.NewNotificationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
