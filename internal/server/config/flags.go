package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/jobwizard/internal/flagx"
)

var serverFlags = []string{"-a", "-d", "-driver", "-s", "-t", "-hooks", "-currency", "-return-url", "-autofund",
	"-u", "-p", "-b", "-g", "-e", "-l", "-log-format", "-otel"}

// parseFlags populates server Config fields from command-line flags.
//
// Supported flags:
//
//	-a string          gRPC bind address (e.g., ":50051")
//	-d string          database DSN
//	-driver string     storage driver: postgres, sqlite or memory
//	-s string          JWT HMAC secret key
//	-t int             token validity, minutes
//	-hooks             enable test hooks (use -hooks=true)
//	-currency string   payment currency
//	-return-url string payment return URL
//	-autofund          sandbox payments are funded immediately
//	-u / -p string     S3 access key / secret key
//	-b / -g / -e       S3 bucket / region / base endpoint
//	-l string          log level
//	-log-format string json or text
//	-otel string       OTLP/HTTP endpoint
//
// os.Args is first filtered with flagx.FilterArgs so flags meant for other
// components (-c, -envfile) do not break parsing.
func parseFlags(config *Config) error {
	args := flagx.FilterArgs(os.Args[1:], serverFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.StorageDriver, "driver", config.StorageDriver, "storage driver")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	tokenValidity := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "token validity (in minutes)")
	fs.BoolVar(&config.TestHooksEnabled, "hooks", config.TestHooksEnabled, "enable test hooks")
	fs.StringVar(&config.Currency, "currency", config.Currency, "payment currency")
	fs.StringVar(&config.PaymentReturnURL, "return-url", config.PaymentReturnURL, "payment return URL")
	fs.BoolVar(&config.SandboxAutoFund, "autofund", config.SandboxAutoFund, "fund sandbox payments immediately")
	fs.StringVar(&config.S3AccessKey, "u", config.S3AccessKey, "S3 access key")
	fs.StringVar(&config.S3SecretKey, "p", config.S3SecretKey, "S3 secret key")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.LogFormat, "log-format", config.LogFormat, "log format")
	fs.StringVar(&config.OTELEndpoint, "otel", config.OTELEndpoint, "OTLP/HTTP endpoint")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	config.AccessTokenValidityDuration = time.Duration(*tokenValidity) * time.Minute
	return nil
}
