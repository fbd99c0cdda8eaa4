package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// configFileName is the user configuration file looked up in configDir.
const configFileName = "omoi.yaml"

// Initialize loads, validates, and returns ready-to-use configuration.
//
// Steps performed:
//  1. Load omoi.yaml from configDir (missing file → pure defaults)
//  2. Expand environment variables in the YAML content
//  3. Merge user values over built-in defaults
//  4. Validate the result
func Initialize(_ context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg := DefaultConfig()
	cfg.configDir = configDir

	path := filepath.Join(configDir, configFileName)
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		log.Info("No configuration file found, using built-in defaults", "path", path)
	case err != nil:
		return nil, NewLoadError(configFileName, err)
	default:
		user := &Config{}
		if err := yaml.Unmarshal(ExpandEnv(data), user); err != nil {
			return nil, NewLoadError(configFileName, fmt.Errorf("%w: %v", ErrInvalidYAML, err))
		}
		// User values override defaults; zero-valued user fields keep the
		// default.
		if err := mergo.Merge(cfg, user, mergo.WithOverride); err != nil {
			return nil, NewLoadError(configFileName, err)
		}
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized successfully",
		"scheduler_tick", cfg.Scheduler.TickInterval,
		"monitor_tick", cfg.Monitor.TickInterval,
		"anomaly_threshold", cfg.Anomaly.Threshold)

	return cfg, nil
}
