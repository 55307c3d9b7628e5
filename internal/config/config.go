package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

// Config - application configuration read from the environment
type Config struct {
	HTTPPort       string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"file://migrations"`

	// MongoDB
	MongoURI      string        `env:"MONGO_URI,required,notEmpty"`
	MongoDatabase string        `env:"MONGO_DATABASE" envDefault:"emergency"`
	MongoTimeout  time.Duration `env:"MONGO_TIMEOUT" envDefault:"10s"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Session tokens
	JWTSecret string        `env:"JWT_SECRET,required,notEmpty"`
	JWTTTL    time.Duration `env:"JWT_TTL" envDefault:"168h"`

	// Attachment storage
	MinioEndpoint  string `env:"MINIO_ENDPOINT" envDefault:"localhost:9000"`
	MinioAccessKey string `env:"MINIO_ACCESS_KEY"`
	MinioSecretKey string `env:"MINIO_SECRET_KEY"`
	MinioBucket    string `env:"MINIO_BUCKET" envDefault:"incident-attachments"`
	MinioUseSSL    bool   `env:"MINIO_USE_SSL" envDefault:"false"`
	MinioPublicURL string `env:"MINIO_PUBLIC_URL"`
	MaxUploadMB    int64  `env:"MAX_UPLOAD_MB" envDefault:"32"`

	// HTTP
	CORSOrigins    []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`
	LoginRateLimit int      `env:"LOGIN_RATE_LIMIT" envDefault:"5"`

	// Feeds
	AlertFeedLimit         int  `env:"ALERT_FEED_LIMIT" envDefault:"50"`
	ZoneRecentLimit        int  `env:"ZONE_RECENT_LIMIT" envDefault:"25"`
	AlertStrictTransitions bool `env:"ALERT_STRICT_TRANSITIONS" envDefault:"false"`
}

// LoadConfig loads the configuration from environment variables and an optional .env file
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if len(c.JWTSecret) < 16 {
		return fmt.Errorf("JWT_SECRET must be at least 16 characters long")
	}
	if c.AlertFeedLimit < 1 {
		return fmt.Errorf("invalid ALERT_FEED_LIMIT: %d", c.AlertFeedLimit)
	}
	if c.ZoneRecentLimit < 1 {
		return fmt.Errorf("invalid ZONE_RECENT_LIMIT: %d", c.ZoneRecentLimit)
	}
	// 0 turns the limiter off
	if c.LoginRateLimit < 0 {
		return fmt.Errorf("invalid LOGIN_RATE_LIMIT: %d", c.LoginRateLimit)
	}
	if c.WebhookMaxRetries < 1 {
		return fmt.Errorf("invalid WEBHOOK_MAX_RETRIES: %d", c.WebhookMaxRetries)
	}
	return nil
}
