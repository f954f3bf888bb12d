// Package config loads the safedesk settings from SAFEDESK_* environment
// variables.
package config

import (
	"time"

	"github.com/gabapcia/safedesk/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

// Prefix of every environment variable read by Load.
const Prefix = "SAFEDESK"

// RPC configures the JSON-RPC connection to the Ethereum node.
type RPC struct {
	Endpoint     string        `envconfig:"ENDPOINT" validate:"required,url"`
	Timeout      time.Duration `envconfig:"TIMEOUT" default:"10s" validate:"gt=0"`
	RetryMax     int           `envconfig:"RETRY_MAX" default:"3" validate:"gte=0"`
	RetryWaitMin time.Duration `envconfig:"RETRY_WAIT_MIN" default:"500ms"`
	RetryWaitMax time.Duration `envconfig:"RETRY_WAIT_MAX" default:"5s"`
}

// Redis configures the store holding loaded Safes and transactions.
type Redis struct {
	Addr     string `envconfig:"ADDR" default:"localhost:6379" validate:"required,hostname_port"`
	Username string `envconfig:"USERNAME"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB" default:"0" validate:"gte=0"`
}

// Telemetry toggles the OTLP exporters. Endpoints come from the standard
// OTEL_EXPORTER_OTLP_* variables.
type Telemetry struct {
	Enabled     bool   `envconfig:"ENABLED" default:"false"`
	ServiceName string `envconfig:"SERVICE_NAME" default:"safedesk" validate:"required"`
}

// Config holds every setting of the application.
type Config struct {
	LogLevel       string        `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	PrepareTimeout time.Duration `envconfig:"PREPARE_TIMEOUT" default:"30s" validate:"gte=0"`
	ReadAttempts   uint          `envconfig:"READ_ATTEMPTS" default:"3" validate:"gte=1"`

	RPC       RPC       `envconfig:"RPC"`
	Redis     Redis     `envconfig:"REDIS"`
	Telemetry Telemetry `envconfig:"TELEMETRY"`
}

// Load reads the configuration from the environment, applying defaults, and
// validates it.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, err
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
