package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("POBSD_DATABASE", "")
	t.Setenv("POBSD_MODE", "")
	t.Setenv("POBSD_LOG_LEVEL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DatabasePath != DefaultDatabasePath {
		t.Errorf("expected %s, got %s", DefaultDatabasePath, cfg.DatabasePath)
	}
	if cfg.Mode != DefaultMode {
		t.Errorf("expected %s, got %s", DefaultMode, cfg.Mode)
	}
	if cfg.LogLevel != slog.LevelWarn {
		t.Errorf("expected warn, got %s", cfg.LogLevel)
	}
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("POBSD_DATABASE", "/tmp/games.db")
	t.Setenv("POBSD_MODE", "strict")
	t.Setenv("POBSD_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DatabasePath != "/tmp/games.db" || cfg.Mode != "strict" || cfg.LogLevel != slog.LevelDebug {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestLoad_InvalidLevel(t *testing.T) {
	t.Setenv("POBSD_LOG_LEVEL", "loud")

	if _, err := Load(); err == nil {
		t.Error("expected an error for an invalid log level")
	}
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("POBSD_DATABASE=/from/env/file.db\n"), 0644); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}
	t.Chdir(dir)
	t.Setenv("POBSD_DATABASE", "")
	os.Unsetenv("POBSD_DATABASE")

	if got := LoadEnvFile(); got != ".env" {
		t.Fatalf("expected .env to be loaded, got %q", got)
	}
	if got := DatabasePath(); got != "/from/env/file.db" {
		t.Errorf("expected path from .env, got %s", got)
	}
}
