package components

import (
	"context"
	"log/slog"
	"net/http"

	"transit-booking/internal/domain/seat"
	"transit-booking/internal/infra/payment"
	"transit-booking/internal/infra/readstore"
	"transit-booking/internal/infra/seatledger"
	sqlc "transit-booking/internal/infra/sqlc/generated"
	"transit-booking/internal/infra/uow"
	"transit-booking/internal/pkg/clock"
	"transit-booking/internal/pkg/config"
	"transit-booking/internal/usecase/commands"
	"transit-booking/internal/usecase/queries"
	"transit-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
	ledgerModule,
	paymentModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Schedule
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ScheduleReadQueries)),
		),
		fx.Annotate(
			readstore.NewScheduleReadStore,
			fx.As(new(queries.ScheduleReadStore)),
			fx.As(new(commands.PriceSource)),
		),
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingReadQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
			fx.As(fx.Self()),
		),
		// Notification
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.NotificationReadQueries)),
		),
		fx.Annotate(
			readstore.NewNotificationReadStore,
			fx.As(new(queries.NotificationReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

var ledgerModule = fx.Module("persistence/seatledger",
	fx.Provide(
		NewSeatLedger,
	),
)

var paymentModule = fx.Module("persistence/payment",
	fx.Provide(
		NewPaymentGateway,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

// NewSeatLedger picks the ledger backend. The memory ledger only fits a single instance and is
// rebuilt from confirmed bookings before the server starts taking requests.
func NewSeatLedger(
	lc fx.Lifecycle,
	cfg config.Config,
	q *sqlc.Queries,
	db sqlc.DBTX,
	clk clock.Clock,
	bookings *readstore.BookingReadStore,
	logger *slog.Logger,
) shared.SeatLedger {
	if cfg.Booking.LedgerBackend != config.LedgerBackendMemory {
		return seatledger.NewPostgresLedger(q, db, clk)
	}

	ledger := seatledger.NewMemoryLedger(clk)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			confirmed, err := bookings.ConfirmedFrom(ctx, seat.NewTravelDate(clk.Now()))
			if err != nil {
				return err
			}
			n := ledger.Restore(confirmed)
			logger.Info("seat ledger restored from confirmed bookings", "slots", n)
			return nil
		},
	})
	return ledger
}

func NewPaymentGateway(cfg config.Config, logger *slog.Logger) shared.PaymentGateway {
	if cfg.Payment.Sandbox {
		logger.Warn("payment sandbox enabled; charges are approved without calling a gateway")
		return payment.NewSandboxGateway()
	}
	return payment.NewHTTPGateway(cfg.Payment, &http.Client{})
}
