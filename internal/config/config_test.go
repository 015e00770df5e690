package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	s := Default()
	if err := s.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if s.GridSize != 15 || s.Duration != 90 || s.TargetSum != 10 {
		t.Errorf("unexpected defaults: %+v", s)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Settings)
	}{
		{"tiny grid", func(s *Settings) { s.GridSize = 1 }},
		{"zero min", func(s *Settings) { s.MinValue = 0 }},
		{"max above nine", func(s *Settings) { s.MaxValue = 10 }},
		{"inverted range", func(s *Settings) { s.MinValue, s.MaxValue = 8, 3 }},
		{"zero target", func(s *Settings) { s.TargetSum = 0 }},
		{"single cell selection", func(s *Settings) { s.MinSelection = 1 }},
		{"no time", func(s *Settings) { s.Duration = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.modify(&s)
			if err := s.Validate(); !errors.Is(err, ErrInvalidSettings) {
				t.Fatalf("Validate() = %v, want ErrInvalidSettings", err)
			}
		})
	}
}

func TestLoadSettingsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apple.yaml")
	data := []byte("grid_size: 10\nduration: 60\npolicy: path\nseed: 42\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if s.GridSize != 10 || s.Duration != 60 || s.Policy != "path" || s.Seed != 42 {
		t.Errorf("file values not applied: %+v", s)
	}
	if s.TargetSum != 10 || s.MaxValue != 9 {
		t.Errorf("defaults lost for keys missing from the file: %+v", s)
	}
}

func TestLoadSettingsEnvOverrides(t *testing.T) {
	t.Setenv(durationEnvName, "30")
	t.Setenv(policyEnvName, "path")
	t.Setenv(seedEnvName, "7")
	t.Setenv(logLevelEnvName, "debug")

	s, err := LoadSettings("")
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if s.Duration != 30 || s.Policy != "path" || s.Seed != 7 || s.LogLevel != "debug" {
		t.Errorf("env overrides not applied: %+v", s)
	}
}

func TestLoadSettingsErrors(t *testing.T) {
	if _, err := LoadSettings(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file: expected error")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("grid_size: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSettings(bad); err == nil {
		t.Error("malformed yaml: expected error")
	}

	t.Setenv(gridSizeEnvName, "fifteen")
	if _, err := LoadSettings(""); err == nil {
		t.Error("non-numeric env value: expected error")
	}
}

func TestLoadEnv(t *testing.T) {
	if err := LoadEnv(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Fatalf("missing .env should be ignored, got %v", err)
	}

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("APPLE_TEST_ONLY_KEY=ripe\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("APPLE_TEST_ONLY_KEY") })
	if err := LoadEnv(path); err != nil {
		t.Fatalf("LoadEnv failed: %v", err)
	}
	if got := os.Getenv("APPLE_TEST_ONLY_KEY"); got != "ripe" {
		t.Errorf("APPLE_TEST_ONLY_KEY = %q, want %q", got, "ripe")
	}
}
