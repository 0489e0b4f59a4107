package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// defaultConfigFile is picked up from the working directory when
// HARMONIA_CONFIG is unset.
const defaultConfigFile = "./config.yaml"

// Load assembles the runtime configuration and validates it.
// Values resolve in priority order: environment variables, then the
// YAML file, then env-default struct tags.
//
// The YAML file is named by HARMONIA_CONFIG. Without it, Load falls
// back to ./config.yaml and tolerates its absence; an explicitly named
// file that is missing is an error.
func Load() (*Config, error) {
	var cfg Config

	path, required := configPath()

	err := cleanenv.ReadConfig(path, &cfg)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist) && !required:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	default:
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// configPath resolves the YAML file to read and whether it must exist.
func configPath() (string, bool) {
	if p := os.Getenv("HARMONIA_CONFIG"); p != "" {
		return p, true
	}
	return defaultConfigFile, false
}
