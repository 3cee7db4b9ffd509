package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	foundationerrors "git.home.luguber.info/inful/seogen/internal/foundation/errors"
)

// envFiles are loaded (without overriding the process environment) before
// the configuration file is expanded.
var envFiles = []string{".env", ".env.local"}

// Load reads the configuration file at path. When path is DefaultPath and the
// file does not exist, the built-in defaults are returned instead.
func Load(path string) (*Config, error) {
	loadEnvFiles()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && path == DefaultPath {
			return Default(), nil
		}
		return nil, foundationerrors.WrapError(err, foundationerrors.CategoryConfig, "failed to read config file").
			Fatal().
			UserAction().
			WithContext("path", path).
			Build()
	}
	cfg, err := Parse(data)
	if err != nil {
		if ce, ok := foundationerrors.AsClassified(err); ok {
			return nil, ce.WithContext("path", path)
		}
		return nil, err
	}
	return cfg, nil
}

// Parse expands ${VAR} references in data and decodes, normalizes, defaults
// and validates the result.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader([]byte(expanded)))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, foundationerrors.WrapError(err, foundationerrors.CategoryConfig, "failed to parse config").
			Fatal().
			UserAction().
			Build()
	}
	if cfg.Version != "" && cfg.Version != CurrentVersion {
		return nil, foundationerrors.ConfigError("unsupported configuration version").
			WithContext("version", cfg.Version).
			WithContext("expected", CurrentVersion).
			Build()
	}
	if err := normalize(&cfg); err != nil {
		return nil, foundationerrors.ConfigError("invalid configuration value").WithCause(err).Build()
	}
	applyDefaults(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadEnvFiles() {
	for _, name := range envFiles {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		// godotenv.Load never overrides variables already present.
		_ = godotenv.Load(name)
	}
}
