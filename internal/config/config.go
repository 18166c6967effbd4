// Package config defines configuration parsing and helpers.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
)

// Config holds all application configuration parsed from environment variables.
type Config struct {
	AppEnv string `env:"APP_ENV" envDefault:"dev"`
	Port   int    `env:"PORT" envDefault:"8080" validate:"gt=0,lte=65535"`

	// Input tables, read once at startup and cached for the process lifetime.
	TrendingCSVPath string `env:"TRENDING_CSV_PATH" envDefault:"trending_topics.csv" validate:"required"`
	WordFreqCSVPath string `env:"WORD_FREQUENCY_CSV_PATH" envDefault:"word_frequency_table.csv" validate:"required"`

	// ReportOutputPath is the well-known artifact location, overwritten on
	// every successful render.
	ReportOutputPath string `env:"REPORT_OUTPUT_PATH" envDefault:"trending_topics_report.pdf" validate:"required"`

	// ReportTemplatePath optionally points at a YAML file overriding the
	// report copy (title, cover paragraph, summary bullets). Empty means
	// built-in defaults.
	ReportTemplatePath string `env:"REPORT_TEMPLATE_PATH"`

	CORSAllowOrigins      string        `env:"CORS_ALLOW_ORIGINS" envDefault:"*"`
	RateLimitPerMin       int           `env:"RATE_LIMIT_PER_MIN" envDefault:"30" validate:"gt=0"`
	ServerShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
	HTTPReadTimeout       time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"15s"`
	HTTPWriteTimeout      time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
	HTTPIdleTimeout       time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`
}

// Load parses environment variables into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("op=config.Load: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("op=config.Load validate: %w", err)
	}
	return cfg, nil
}

// IsDev reports whether the app is running in development mode.
func (c Config) IsDev() bool { return strings.ToLower(c.AppEnv) == "dev" }

// IsProd reports whether the app is running in production mode.
func (c Config) IsProd() bool { return strings.ToLower(c.AppEnv) == "prod" }

// IsTest reports whether the app is running in test mode.
func (c Config) IsTest() bool { return strings.ToLower(c.AppEnv) == "test" }
