package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/jobwizard/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string      address and port of the backend server
//	-token string  access token
//	-i int         online check interval in seconds
//	-timeout int   request timeout in seconds
//	-cache string  offline cache directory ("" disables it)
//
// os.Args is filtered with flagx.FilterArgs first so flags handled
// elsewhere do not break parsing.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-token", "-i", "-timeout", "-cache"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.StringVar(&cfg.AccessToken, "token", cfg.AccessToken, "access token")
	fs.StringVar(&cfg.CacheDir, "cache", cfg.CacheDir, "offline cache directory")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	requestTimeout := fs.Int("timeout", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
