package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"

	RateLimitMemory = "memory"
	RateLimitRedis  = "redis"

	devJWTSecret = "noteboard-dev-secret"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
	Tracing   TracingConfig
}

type AppConfig struct {
	Port               string `env:"APP_PORT" envDefault:"3000"`
	Environment        string `env:"GO_ENV" envDefault:"development"`
	LogFilePath        string `env:"LOG_FILE_PATH" envDefault:"logs/app.log"`
	CorsAllowedOrigins string `env:"CORS_ALLOWED_ORIGINS" envDefault:"http://localhost:5173"`
	NatsURL            string `env:"NATS_URL"`
	RedisURL           string `env:"REDIS_URL" envDefault:"redis://localhost:6379"`
	EventsTopic        string `env:"EVENTS_TOPIC" envDefault:"noteboard.events"`
}

type DatabaseConfig struct {
	Driver      string `env:"DB_DRIVER" envDefault:"postgres"`
	Connection  string `env:"DB_CONNECTION_STRING"`
	AutoMigrate bool   `env:"DB_AUTO_MIGRATE" envDefault:"true"`
}

type AuthConfig struct {
	JWTSecret              string        `env:"JWT_SECRET"`
	JWTIssuer              string        `env:"JWT_ISSUER" envDefault:"https://noteboard.local/issuer"`
	AccessTokenTTL         time.Duration `env:"JWT_ACCESS_TOKEN_TTL" envDefault:"30m"`
	LegacyPlaintextEnabled bool          `env:"AUTH_LEGACY_PLAINTEXT_FALLBACK" envDefault:"true"`
	BcryptCost             int           `env:"BCRYPT_COST" envDefault:"10"`
}

type RateLimitConfig struct {
	Backend    string        `env:"RATE_LIMIT_BACKEND" envDefault:"memory"`
	LoginRPS   float64       `env:"RATE_LIMIT_LOGIN_RPS" envDefault:"1"`
	LoginBurst int           `env:"RATE_LIMIT_LOGIN_BURST" envDefault:"5"`
	Window     time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`
}

type TracingConfig struct {
	Enabled     bool   `env:"OTEL_ENABLED" envDefault:"false"`
	Endpoint    string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:"localhost:4318"`
	ServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"noteboard-be"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}
	return parse(env.Options{})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.Auth.JWTSecret == "" && cfg.IsDevelopment() {
		cfg.Auth.JWTSecret = devJWTSecret
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.App.Environment, "development")
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.App.Environment, "production")
}

// BurstWindowMax is the request count the redis limiter allows per window,
// derived from the token bucket settings used by the memory limiter.
func (c RateLimitConfig) BurstWindowMax() int64 {
	n := int64(c.LoginRPS*c.Window.Seconds()) + int64(c.LoginBurst)
	if n < 1 {
		return 1
	}
	return n
}

func (c *Config) Validate() error {
	var errs []error

	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.Connection == "" {
			errs = append(errs, errors.New("DB_CONNECTION_STRING is required for the postgres driver"))
		}
	case DriverMemory:
	default:
		errs = append(errs, fmt.Errorf("DB_DRIVER must be %q or %q, got %q", DriverPostgres, DriverMemory, c.Database.Driver))
	}

	if c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required outside development"))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		errs = append(errs, errors.New("JWT_ACCESS_TOKEN_TTL must be positive"))
	}

	switch c.RateLimit.Backend {
	case RateLimitMemory, RateLimitRedis:
	default:
		errs = append(errs, fmt.Errorf("RATE_LIMIT_BACKEND must be %q or %q, got %q", RateLimitMemory, RateLimitRedis, c.RateLimit.Backend))
	}
	if c.RateLimit.LoginRPS <= 0 || c.RateLimit.LoginBurst <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_LOGIN_RPS and RATE_LIMIT_LOGIN_BURST must be positive"))
	}

	return errors.Join(errs...)
}
