// Package config reads the application configuration from environment
// variables. Callers load .env files (godotenv) before Load; the engine
// itself only ever sees the resulting values.
package config

import (
	"os"
	"strconv"

	"docuform/internal/errors"
)

// Config is the complete application configuration.
type Config struct {
	Generation GenerationConfig
	Paths      PathConfig
}

// GenerationConfig controls document-number generation.
type GenerationConfig struct {
	// DocumentPrefix prefixes every generated document number.
	DocumentPrefix string
	// IncludeDateInNumber keeps the YYYYMMDD segment in document numbers.
	IncludeDateInNumber bool
}

// PathConfig holds file system paths for the CLI tooling.
type PathConfig struct {
	// BundleFile is the default survey bundle the CLI operates on.
	BundleFile string
	// OutputDir receives rendered previews and review reports.
	OutputDir string
}

// Load reads configuration from the environment and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		Generation: GenerationConfig{
			DocumentPrefix:      getEnvOrDefault("DOC_PREFIX", "INC"),
			IncludeDateInNumber: getEnvBoolOrDefault("DOC_NUMBER_DATE", true),
		},
		Paths: PathConfig{
			BundleFile: getEnvOrDefault("BUNDLE_FILE", "bundle.json"),
			OutputDir:  getEnvOrDefault("OUTPUT_DIR", "out"),
		},
	}
	if err := validate(cfg); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Paths.OutputDir == "" {
		return errors.ConfigInvalid("OUTPUT_DIR cannot be empty")
	}
	return nil
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBoolOrDefault(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
