package config

import "time"

// Config holds runtime settings for the jobwizard CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend gRPC endpoint.
//   - AccessToken: bearer token identifying the actor (see `jobwizard-cli token`).
//   - OnlineCheckInterval: how often the client checks server reachability.
//   - RequestTimeout: deadline applied to every RPC.
//   - CacheDir: directory (relative to the working directory unless absolute) holding the
//     offline draft cache. Empty disables the cache.
type Config struct {
	ServerEndpointAddr  string        `env:"JOBWIZARD_SERVER_ADDR"`
	AccessToken         string        `env:"JOBWIZARD_TOKEN"`
	OnlineCheckInterval time.Duration `env:"JOBWIZARD_ONLINE_CHECK_INTERVAL"`
	RequestTimeout      time.Duration `env:"JOBWIZARD_REQUEST_TIMEOUT"`
	CacheDir            string        `env:"JOBWIZARD_CACHE_DIR"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.AccessToken = ""
	c.OnlineCheckInterval = 3 * time.Second
	c.RequestTimeout = 10 * time.Second
	c.CacheDir = ".jobwizard"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags (if present).
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
