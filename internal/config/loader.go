// internal/config/loader.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	gridSizeEnvName = "APPLE_GRID_SIZE"
	durationEnvName = "APPLE_DURATION"
	policyEnvName   = "APPLE_POLICY"
	seedEnvName     = "APPLE_SEED"
	logLevelEnvName = "LOG_LEVEL"
)

// LoadEnv reads a .env file into the process environment. A missing file is
// not an error.
func LoadEnv(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

// LoadSettings starts from Default, applies the YAML file at path (if path is
// not empty) and then the environment overrides.
func LoadSettings(path string) (Settings, error) {
	s := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return s, fmt.Errorf("failed to read settings file: %w", err)
		}
		if err := yaml.Unmarshal(data, &s); err != nil {
			return s, fmt.Errorf("failed to unmarshal settings: %w", err)
		}
	}
	if err := applyEnv(&s); err != nil {
		return s, err
	}
	return s, nil
}

func applyEnv(s *Settings) error {
	if err := envInt(gridSizeEnvName, &s.GridSize); err != nil {
		return err
	}
	if err := envInt(durationEnvName, &s.Duration); err != nil {
		return err
	}
	if v := os.Getenv(seedEnvName); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", seedEnvName, err)
		}
		s.Seed = seed
	}
	if v := os.Getenv(policyEnvName); v != "" {
		s.Policy = v
	}
	if v := os.Getenv(logLevelEnvName); v != "" {
		s.LogLevel = v
	}
	return nil
}

func envInt(name string, dst *int) error {
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", name, err)
	}
	*dst = n
	return nil
}
