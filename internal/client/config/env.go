package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/dmitrijs2005/jobwizard/internal/flagx"
	"github.com/joho/godotenv"
)

// parseEnv overlays JOBWIZARD_* variables, after loading the dotenv file
// named by -envfile or, when present, ./.env. Panics on malformed values.
func parseEnv(cfg *Config) {
	if path := flagx.EnvFileFlags(); path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
	} else {
		_ = godotenv.Load()
	}

	if err := env.Parse(cfg); err != nil {
		panic(err)
	}
}
