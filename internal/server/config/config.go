// Package config handles configuration for the server component: defaults,
// an optional JSON file, a .env file and JOBWIZARD_* environment variables,
// and finally command-line flags, each layer overriding the previous one.
package config

import (
	"fmt"
	"time"
)

// Config holds runtime settings for the jobwizard server.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the public gRPC endpoint.
//   - StorageDriver / DatabaseDSN: draft store backend (postgres, sqlite, memory) and its DSN.
//   - SecretKey: HMAC secret for verifying JWTs (HS256). Do not use the default in prod.
//   - AccessTokenValidityDuration: lifetime of tokens minted by the dev token command.
//   - TestHooksEnabled: allows the reset and seed RPCs. Never enable in prod.
//   - Currency / PaymentReturnURL / SandboxAutoFund: payment settings.
//   - S3*: object storage for job photos. An empty bucket disables uploads.
//   - LogLevel / LogFormat: slog handler settings.
//   - OTELEndpoint: OTLP/HTTP trace collector; empty disables tracing.
type Config struct {
	EndpointAddrGRPC            string        `env:"JOBWIZARD_GRPC_ADDR"`
	StorageDriver               string        `env:"JOBWIZARD_STORAGE_DRIVER"`
	DatabaseDSN                 string        `env:"JOBWIZARD_DATABASE_DSN"`
	SecretKey                   string        `env:"JOBWIZARD_SECRET_KEY"`
	AccessTokenValidityDuration time.Duration `env:"JOBWIZARD_TOKEN_TTL"`
	TestHooksEnabled            bool          `env:"JOBWIZARD_TEST_HOOKS"`
	Currency                    string        `env:"JOBWIZARD_CURRENCY"`
	PaymentReturnURL            string        `env:"JOBWIZARD_PAYMENT_RETURN_URL"`
	SandboxAutoFund             bool          `env:"JOBWIZARD_SANDBOX_AUTO_FUND"`
	S3AccessKey                 string        `env:"JOBWIZARD_S3_ACCESS_KEY"`
	S3SecretKey                 string        `env:"JOBWIZARD_S3_SECRET_KEY"`
	S3Bucket                    string        `env:"JOBWIZARD_S3_BUCKET"`
	S3Region                    string        `env:"JOBWIZARD_S3_REGION"`
	S3BaseEndpoint              string        `env:"JOBWIZARD_S3_ENDPOINT"`
	LogLevel                    string        `env:"JOBWIZARD_LOG_LEVEL"`
	LogFormat                   string        `env:"JOBWIZARD_LOG_FORMAT"`
	OTELEndpoint                string        `env:"JOBWIZARD_OTEL_ENDPOINT"`
}

// LoadDefaults populates Config with development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.StorageDriver = "sqlite"
	c.DatabaseDSN = "file:jobwizard.db?_pragma=busy_timeout(5000)"
	c.SecretKey = "secretKey"
	c.AccessTokenValidityDuration = 24 * time.Hour
	c.TestHooksEnabled = false
	c.Currency = "usd"
	c.PaymentReturnURL = "http://localhost:3000/post-job/payment/return"
	c.SandboxAutoFund = false
	c.S3AccessKey = "minioadmin"
	c.S3SecretKey = "minioadmin"
	c.S3Bucket = "job-photos"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
	c.LogLevel = "info"
	c.LogFormat = "json"
	c.OTELEndpoint = ""
}

// Validate rejects combinations the server cannot start with.
func (c *Config) Validate() error {
	switch c.StorageDriver {
	case "postgres", "sqlite", "memory":
	default:
		return fmt.Errorf("unknown storage driver %q", c.StorageDriver)
	}
	if c.SecretKey == "" {
		return fmt.Errorf("secret key must not be empty")
	}
	if c.Currency == "" {
		return fmt.Errorf("currency must not be empty")
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment and command-line flags.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
