package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DefaultLimitComments = 20
	MaxLimitComments     = 100
)

const (
	StoreMongo  = "mongo"
	StoreMemory = "memory"
)

type Config struct {
	Port           string        `env:"PORT" envDefault:"8000"`
	MongoURI       string        `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	MongoDB        string        `env:"MONGO_DB" envDefault:"unicom"`
	JWTSecret      string        `env:"JWT_SECRET"`
	Store          string        `env:"STORE" envDefault:"mongo"`
	RedisAddr      string        `env:"REDIS_ADDR"`
	RateLimit      int64         `env:"RATE_LIMIT_PER_MIN" envDefault:"120"`
	OTLPEndpoint   string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName    string        `env:"OTEL_SERVICE_NAME" envDefault:"social-webbase"`
	Environment    string        `env:"ENV" envDefault:"dev"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"5s"`
	CORSOrigins    string        `env:"CORS_ORIGINS" envDefault:"*"`
}

// LoadConfig reads .env when present, then the process environment.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug(".env file not found, using system environment variables")
	}
	return Parse()
}

// Parse builds a Config from the process environment only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	switch c.Store {
	case StoreMongo, StoreMemory:
	default:
		return fmt.Errorf("STORE must be %q or %q, got %q", StoreMongo, StoreMemory, c.Store)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive")
	}
	return nil
}
