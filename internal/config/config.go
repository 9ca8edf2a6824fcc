// Package config holds the seeder's environment-driven configuration.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/goleaf/statybae-seeder/internal/translate"
	pkgconfig "github.com/goleaf/statybae-seeder/pkg/config"
	"github.com/goleaf/statybae-seeder/pkg/database"
)

// baseLocale is the locale seed definitions are written in.
const baseLocale = "lt"

// Config holds all configuration for the seeder.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	AppName string `env:"APP_NAME" envDefault:"Statybae Commerce"`
	AppURL  string `env:"APP_URL" envDefault:"https://statybae.lt"`

	// Locales, comma-separated. The raw string is normalized through
	// Locales: entries trimmed, empties and duplicates dropped, the base
	// locale first regardless of where it appears.
	SupportedLocales string `env:"SUPPORTED_LOCALES" envDefault:"lt,en,ru,de"`

	// PostgreSQL
	PostgresHost string `env:"POSTGRES_HOST" envDefault:"localhost"`
	PostgresPort int    `env:"POSTGRES_PORT" envDefault:"5432"`
	PostgresUser string `env:"POSTGRES_USER" envDefault:"statybae"`
	PostgresPass string `env:"POSTGRES_PASSWORD" envDefault:"statybae_secret"`
	PostgresDB   string `env:"POSTGRES_DB" envDefault:"statybae_db"`
	PostgresSSL  string `env:"POSTGRES_SSL_MODE" envDefault:"disable"`

	// Customer bulk seeding
	CustomerCount    int           `env:"SEED_CUSTOMER_COUNT" envDefault:"500"`
	CustomerDeadline time.Duration `env:"SEED_CUSTOMER_DEADLINE" envDefault:"2m"`

	// Kafka. Events are skipped entirely when no brokers are configured.
	KafkaBrokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaTopic   string   `env:"KAFKA_SEED_TOPIC" envDefault:"commerce.seed.completed"`

	// Redis. Cache invalidation is skipped when no host is configured.
	RedisHost string `env:"REDIS_HOST"`
	RedisPort int    `env:"REDIS_PORT" envDefault:"6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Metrics. Run counters are pushed here when set.
	PushgatewayURL string `env:"PUSHGATEWAY_URL"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load seeder config: %w", err)
	}
	if strings.TrimSpace(cfg.SupportedLocales) == "" {
		return nil, fmt.Errorf("SUPPORTED_LOCALES must name at least one locale")
	}
	if cfg.CustomerCount < 0 {
		return nil, fmt.Errorf("SEED_CUSTOMER_COUNT must not be negative, got %d", cfg.CustomerCount)
	}
	return cfg, nil
}

// Locales returns the normalized locale list. The base locale is always
// first and always present, so a raw value like "en,ru,lt" still resolves
// Lithuanian seed definitions against "lt".
func (c *Config) Locales() []string {
	return translate.ParseLocales(c.SupportedLocales, baseLocale)
}

// BaseLocale returns the locale seed definitions are written in.
func (c *Config) BaseLocale() string {
	return baseLocale
}

// Postgres returns the connection settings for the seeding pool, keeping
// the batch-sized pool defaults.
func (c *Config) Postgres() database.PostgresConfig {
	pg := database.DefaultPostgresConfig()
	pg.Host = c.PostgresHost
	pg.Port = c.PostgresPort
	pg.User = c.PostgresUser
	pg.Password = c.PostgresPass
	pg.DBName = c.PostgresDB
	pg.SSLMode = c.PostgresSSL
	return pg
}

// Redis returns the cache connection settings.
func (c *Config) Redis() database.RedisConfig {
	return database.RedisConfig{
		Host:     c.RedisHost,
		Port:     c.RedisPort,
		Password: c.RedisPass,
		DB:       c.RedisDB,
	}
}

// KafkaEnabled reports whether seed events should be published.
func (c *Config) KafkaEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

// RedisEnabled reports whether cache invalidation should run.
func (c *Config) RedisEnabled() bool {
	return c.RedisHost != ""
}
