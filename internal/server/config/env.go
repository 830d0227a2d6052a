package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/dmitrijs2005/jobwizard/internal/flagx"
	"github.com/joho/godotenv"
)

// parseEnv loads a dotenv file and then overlays JOBWIZARD_* variables.
// The file named by -envfile is required to exist; the default ./.env is
// optional. Variables already present in the environment win over the file.
func parseEnv(config *Config) error {
	if path := flagx.EnvFileFlags(); path != "" {
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("load env file %s: %w", path, err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	if err := env.Parse(config); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
