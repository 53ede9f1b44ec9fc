package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

var (
	ErrMissingJWTSecret = errors.New("config: JWT_SECRET is required outside development")
	ErrInvalidTimezone  = errors.New("config: DEFAULT_TIMEZONE is not a valid IANA zone")

	ErrInvalidRefreshInterval = errors.New("config: SNAPSHOT_REFRESH_INTERVAL must be positive")
	ErrInvalidRateLimitWindow = errors.New("config: RATE_LIMIT_WINDOW must be positive")
	ErrInvalidCacheTTL        = errors.New("config: CACHE_TTL must be positive")
)

type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBName     string `env:"DB_NAME" envDefault:"rings_closed"`
	DBSSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
	DBMaxOpen  int    `env:"DB_MAX_OPEN" envDefault:"25"`
	DBMaxIdle  int    `env:"DB_MAX_IDLE" envDefault:"25"`

	RedisHost     string `env:"REDIS_HOST" envDefault:"localhost"`
	RedisPort     string `env:"REDIS_PORT" envDefault:"6379"`
	RedisPassword string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	RedisPoolSize int    `env:"REDIS_POOL_SIZE" envDefault:"10"`

	JWTSecret string        `env:"JWT_SECRET"`
	JWTIssuer string        `env:"JWT_ISSUER" envDefault:"rings-closed-engine"`
	JWTTTL    time.Duration `env:"JWT_TTL" envDefault:"24h"`

	RateLimit       int           `env:"RATE_LIMIT" envDefault:"100"`
	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`
	CacheTTL        time.Duration `env:"CACHE_TTL" envDefault:"30m"`

	WorkerQueueSize     int           `env:"WORKER_QUEUE_SIZE" envDefault:"100"`
	RefreshInterval     time.Duration `env:"SNAPSHOT_REFRESH_INTERVAL" envDefault:"1h"`
	SnapshotConcurrency int           `env:"SNAPSHOT_CONCURRENCY" envDefault:"4"`

	DefaultTimezone string `env:"DEFAULT_TIMEZONE" envDefault:"UTC"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"INFO"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

// Load reads an optional .env file and then the process environment.
// A missing .env is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		if !c.IsDevelopment() {
			return ErrMissingJWTSecret
		}
		c.JWTSecret = "dev-only-secret"
	}

	if _, err := time.LoadLocation(c.DefaultTimezone); err != nil || strings.EqualFold(c.DefaultTimezone, "Local") {
		return fmt.Errorf("%w: %q", ErrInvalidTimezone, c.DefaultTimezone)
	}

	if c.RefreshInterval <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidRefreshInterval, c.RefreshInterval)
	}
	if c.RateLimitWindow <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidRateLimitWindow, c.RateLimitWindow)
	}
	if c.CacheTTL <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidCacheTTL, c.CacheTTL)
	}

	if c.WorkerQueueSize < 1 {
		c.WorkerQueueSize = 1
	}
	if c.SnapshotConcurrency < 1 {
		c.SnapshotConcurrency = 1
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Environment, "development")
}

func (c *Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}

// Location is the zone used when a request names none.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
