package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"apple-game/internal/config"
)

func TestLoadSettingsPrecedence(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "apple.yaml")
	if err := os.WriteFile(cfg, []byte("policy: path\nduration: 45\nseed: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("APPLE_DURATION", "60")

	opts := &options{}
	cmd := buildCommand(opts)
	args := []string{"--config", cfg, "--env-file", filepath.Join(dir, ".env"), "--seed", "11"}
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatal(err)
	}

	s, err := loadSettings(cmd, opts)
	if err != nil {
		t.Fatalf("loadSettings failed: %v", err)
	}
	if s.Policy != "path" {
		t.Errorf("Policy = %q, want file value %q", s.Policy, "path")
	}
	if s.Duration != 60 {
		t.Errorf("Duration = %d, want env value 60", s.Duration)
	}
	if s.Seed != 11 {
		t.Errorf("Seed = %d, want flag value 11", s.Seed)
	}
	if s.StartInMenu {
		t.Error("StartInMenu set without --menu")
	}
}

func TestLoadSettingsValidates(t *testing.T) {
	opts := &options{}
	cmd := buildCommand(opts)
	args := []string{"--env-file", filepath.Join(t.TempDir(), ".env"), "--duration", "0"}
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatal(err)
	}

	if _, err := loadSettings(cmd, opts); !errors.Is(err, config.ErrInvalidSettings) {
		t.Fatalf("loadSettings error = %v, want ErrInvalidSettings", err)
	}
}
