package config

import (
	"fmt"

	pkgconfig "github.com/cantikstore/storefront/pkg/config"
)

// Config holds all configuration for the storefront.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// HTTP server
	HTTPPort int `env:"HTTP_PORT" envDefault:"8080"`

	// PostgreSQL (the remote document store)
	PostgresHost string `env:"POSTGRES_HOST" envDefault:"localhost"`
	PostgresPort int    `env:"POSTGRES_PORT" envDefault:"5432"`
	PostgresUser string `env:"POSTGRES_USER" envDefault:"storefront"`
	PostgresPass string `env:"POSTGRES_PASSWORD" envDefault:"storefront_secret"`
	PostgresDB   string `env:"POSTGRES_DB" envDefault:"storefront"`
	PostgresSSL  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`

	// Local fallback store
	LocalStoreDir string `env:"LOCAL_STORE_DIR" envDefault:"./data"`

	// Redis (carts and admin sessions)
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Cart TTL in hours; 0 keeps carts until checkout clears them.
	CartTTLHours int `env:"CART_TTL_HOURS" envDefault:"0"`

	// Admin sessions
	AdminPassword       string `env:"ADMIN_PASSWORD,required"`
	AdminSessionTTLMins int    `env:"ADMIN_SESSION_TTL_MINUTES" envDefault:"720"`

	// Checkout
	StoreName             string `env:"STORE_NAME" envDefault:"Cantik"`
	WhatsAppNumber        string `env:"WHATSAPP_NUMBER" envDefault:"+919605996444"`
	FreeDeliveryThreshold int64  `env:"FREE_DELIVERY_THRESHOLD" envDefault:"999"`
	DeliveryCharge        int64  `env:"DELIVERY_CHARGE" envDefault:"49"`

	// Image bucket
	BucketEndpoint string `env:"BUCKET_ENDPOINT" envDefault:""`
	BucketProject  string `env:"BUCKET_PROJECT_ID" envDefault:""`
	BucketID       string `env:"BUCKET_ID" envDefault:""`

	// Kafka
	KafkaEnabled bool     `env:"KAFKA_ENABLED" envDefault:"false"`
	KafkaBrokers []string `env:"KAFKA_BROKERS" envDefault:"localhost:9092" envSeparator:","`

	// Tracing
	TracingEnabled bool   `env:"TRACING_ENABLED" envDefault:"false"`
	OTLPEndpoint   string `env:"OTLP_ENDPOINT" envDefault:"localhost:4318"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load storefront config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate checks configuration invariants.
func (c *Config) validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTPPort)
	}
	if c.FreeDeliveryThreshold < 0 || c.DeliveryCharge < 0 {
		return fmt.Errorf("delivery threshold and charge must not be negative")
	}
	if c.WhatsAppNumber == "" {
		return fmt.Errorf("whatsapp number is required")
	}
	return nil
}
