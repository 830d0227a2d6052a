// Package config loads runtime configuration for the jobwizard CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. JOBWIZARD_* environment variables, after loading an optional .env file.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string       address:port of the backend gRPC endpoint
//	-token string   access token
//	-i int          online status check interval (seconds)
//	-timeout int    per-request timeout (seconds)
//	-cache string   offline cache directory, "" disables the cache
//
// # JSON schema
//
// Intervals accept strings like "3s" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "access_token": "eyJ...",
//	  "online_check_interval": "3s",
//	  "request_timeout": "10s",
//	  "cache_dir": ".jobwizard"
//	}
package config
