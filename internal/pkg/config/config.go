package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

const (
	LedgerBackendPostgres = "postgres"
	LedgerBackendMemory   = "memory"
)

var (
	ErrInvalidBookingConfig = errors.New("invalid booking config")
	ErrInvalidPaymentConfig = errors.New("invalid payment config")
)

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Booking  BookingConfig
	Payment  PaymentConfig
	RabbitMQ RabbitMQConfig
	Outbox   OutboxConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Colombo"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`

	StatementTimeout time.Duration `envconfig:"DB_STATEMENT_TIMEOUT" default:"5s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Colombo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"19800"` // 5.5*60*60
}

// JWTConfig only validates operator tokens; issuing them belongs to the operator auth service.
type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
	Issuer string `envconfig:"JWT_ISSUER" default:"transit-operator-auth"`
}

type BookingConfig struct {
	LedgerBackend      string        `envconfig:"SEAT_LEDGER_BACKEND" default:"postgres"`
	HoldTimeout        time.Duration `envconfig:"SEAT_HOLD_TIMEOUT" default:"5m"`
	SweepInterval      time.Duration `envconfig:"SEAT_HOLD_SWEEP_INTERVAL" default:"30s"`
	PaymentTimeout     time.Duration `envconfig:"PAYMENT_TIMEOUT" default:"15s"`
	PersistMaxAttempts int           `envconfig:"BOOKING_PERSIST_MAX_ATTEMPTS" default:"5"`
	PersistBaseBackoff time.Duration `envconfig:"BOOKING_PERSIST_BASE_BACKOFF" default:"200ms"`
	RecorderInterval   time.Duration `envconfig:"BOOKING_RECORDER_INTERVAL" default:"5s"`
}

type PaymentConfig struct {
	GatewayURL string `envconfig:"PAYMENT_GATEWAY_URL"`
	APIKey     string `envconfig:"PAYMENT_API_KEY"`
	Currency   string `envconfig:"PAYMENT_CURRENCY" default:"LKR"`
	// Sandbox approves every charge without calling out. Never enable in production.
	Sandbox bool `envconfig:"PAYMENT_SANDBOX" default:"false"`
}

type RabbitMQConfig struct {
	URL      string `envconfig:"RABBITMQ_URL"`
	Exchange string `envconfig:"RABBITMQ_EXCHANGE" default:"notifications"`
}

type OutboxConfig struct {
	PollInterval time.Duration `envconfig:"OUTBOX_POLL_INTERVAL" default:"2s"`
	BatchSize    int32         `envconfig:"OUTBOX_BATCH_SIZE" default:"20"`
	MaxAttempts  int32         `envconfig:"OUTBOX_MAX_ATTEMPTS" default:"10"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// Validate rejects combinations that would let the sweeper free a hold whose payment is still in flight.
func (c BookingConfig) Validate() error {
	switch c.LedgerBackend {
	case LedgerBackendPostgres, LedgerBackendMemory:
	default:
		return fmt.Errorf("%w: unknown ledger backend %q", ErrInvalidBookingConfig, c.LedgerBackend)
	}
	if c.HoldTimeout <= c.PaymentTimeout {
		return fmt.Errorf("%w: hold timeout %s must exceed payment timeout %s",
			ErrInvalidBookingConfig, c.HoldTimeout, c.PaymentTimeout)
	}
	if c.PersistMaxAttempts < 1 {
		return fmt.Errorf("%w: persist attempts must be at least 1", ErrInvalidBookingConfig)
	}
	return nil
}

// Validate refuses to start without a gateway unless the sandbox was asked for explicitly.
func (c PaymentConfig) Validate() error {
	if !c.Sandbox && c.GatewayURL == "" {
		return fmt.Errorf("%w: PAYMENT_GATEWAY_URL is required unless PAYMENT_SANDBOX=true", ErrInvalidPaymentConfig)
	}
	return nil
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables always win
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Booking.Validate(); err != nil {
		return Config{}, err
	}
	if err := cfg.Payment.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Colombo",
			MaxConns: 10,

			StatementTimeout: 5 * time.Second,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Colombo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 19800,
		},
		JWT: JWTConfig{
			Secret: "test-secret",
			Issuer: "transit-operator-auth",
		},
		Booking: BookingConfig{
			LedgerBackend:      LedgerBackendPostgres,
			HoldTimeout:        time.Minute,
			SweepInterval:      time.Second,
			PaymentTimeout:     2 * time.Second,
			PersistMaxAttempts: 3,
			PersistBaseBackoff: 10 * time.Millisecond,
			RecorderInterval:   50 * time.Millisecond,
		},
		Payment: PaymentConfig{
			Currency: "LKR",
			Sandbox:  true,
		},
		RabbitMQ: RabbitMQConfig{
			Exchange: "notifications",
		},
		Outbox: OutboxConfig{
			PollInterval: 100 * time.Millisecond,
			BatchSize:    10,
			MaxAttempts:  3,
		},
	}
}
