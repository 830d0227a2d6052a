package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/jobwizard/internal/flagx"
	"github.com/dmitrijs2005/jobwizard/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Durations accept
// "1h30m" strings or integer nanoseconds. Pointers tell an omitted key
// from an explicit zero value.
type JsonConfig struct {
	EndpointAddrGRPC            string          `json:"endpoint_addr_grpc"`
	StorageDriver               string          `json:"storage_driver"`
	DatabaseDSN                 string          `json:"database_dsn"`
	SecretKey                   string          `json:"secret_key"`
	AccessTokenValidityDuration *timex.Duration `json:"access_token_validity_duration"`
	TestHooksEnabled            *bool           `json:"test_hooks_enabled"`
	Currency                    string          `json:"currency"`
	PaymentReturnURL            string          `json:"payment_return_url"`
	SandboxAutoFund             *bool           `json:"sandbox_auto_fund"`
	S3AccessKey                 string          `json:"s3_access_key"`
	S3SecretKey                 string          `json:"s3_secret_key"`
	S3Bucket                    string          `json:"s3_bucket"`
	S3Region                    string          `json:"s3_region"`
	S3BaseEndpoint              string          `json:"s3_base_endpoint"`
	LogLevel                    string          `json:"log_level"`
	LogFormat                   string          `json:"log_format"`
	OTELEndpoint                string          `json:"otel_endpoint"`
}

// parseJson overlays the JSON file named by -c/-config onto config. Keys
// absent from the file keep their current values.
func parseJson(config *Config) error {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return nil
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", jsonConfigFile, err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.StorageDriver, c.StorageDriver)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	if c.AccessTokenValidityDuration != nil {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.TestHooksEnabled != nil {
		config.TestHooksEnabled = *c.TestHooksEnabled
	}
	setString(&config.Currency, c.Currency)
	setString(&config.PaymentReturnURL, c.PaymentReturnURL)
	if c.SandboxAutoFund != nil {
		config.SandboxAutoFund = *c.SandboxAutoFund
	}
	setString(&config.S3AccessKey, c.S3AccessKey)
	setString(&config.S3SecretKey, c.S3SecretKey)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.LogFormat, c.LogFormat)
	setString(&config.OTELEndpoint, c.OTELEndpoint)
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
