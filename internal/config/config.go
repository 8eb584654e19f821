package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultDatabasePath = "~/.local/share/pobsd/openbsd-games.db"
	DefaultMode         = "relaxed"
	DefaultLogLevel     = "warn"
)

// envFiles are tried in order; the first one found is loaded
var envFiles = []string{".env", "~/.config/pobsd/env"}

// Config holds the settings shared by the binaries
type Config struct {
	DatabasePath string
	Mode         string
	LogLevel     slog.Level
}

// LoadEnvFile loads the first .env file found. Variables already set in the
// environment win. Returns the file loaded, or "" when none was found.
func LoadEnvFile() string {
	for _, path := range envFiles {
		if strings.HasPrefix(path, "~") {
			home, err := os.UserHomeDir()
			if err != nil {
				continue
			}
			path = home + path[1:]
		}
		if err := godotenv.Load(path); err == nil {
			return path
		}
	}
	return ""
}

// Load reads the configuration from POBSD_* environment variables,
// falling back to the defaults.
func Load() (*Config, error) {
	level, err := ParseLogLevel(getenv("POBSD_LOG_LEVEL", DefaultLogLevel))
	if err != nil {
		return nil, err
	}
	return &Config{
		DatabasePath: DatabasePath(),
		Mode:         getenv("POBSD_MODE", DefaultMode),
		LogLevel:     level,
	}, nil
}

// DatabasePath returns the database path from POBSD_DATABASE,
// falling back to DefaultDatabasePath.
func DatabasePath() string {
	return getenv("POBSD_DATABASE", DefaultDatabasePath)
}

// ParseLogLevel accepts debug, info, warn and error
func ParseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelWarn, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
