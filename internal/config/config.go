package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration for the CLI.
type Config struct {
	// DBPath overrides the database location. Empty means the
	// store's default resolution.
	DBPath string

	// LogLevel is one of debug, info, warn, error or silent.
	LogLevel string

	// AutoAdjustDefault is the auto-adjust value for a profile that has
	// never persisted one.
	AutoAdjustDefault bool

	// BootstrapGames are seeded at Rookie on a fresh profile.
	BootstrapGames []string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		LogLevel:          "warn",
		AutoAdjustDefault: true,
		BootstrapGames:    []string{"Binary Game", "Pixel Art Game", "Color Game"},
	}
}

// FromEnv builds a Config from environment variables, falling back to
// defaults for unset or unparsable values. A .env file in the working
// directory is loaded first if present; real environment variables win.
func FromEnv() Config {
	_ = godotenv.Load()

	cfg := DefaultConfig()

	if p := os.Getenv("PLAYTRACK_DB"); p != "" {
		cfg.DBPath = p
	}
	if l := os.Getenv("PLAYTRACK_LOG_LEVEL"); l != "" {
		cfg.LogLevel = strings.ToLower(l)
	}
	if v := os.Getenv("PLAYTRACK_AUTO_ADJUST_DEFAULT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.AutoAdjustDefault = b
		}
	}
	if g := os.Getenv("PLAYTRACK_BOOTSTRAP_GAMES"); g != "" {
		cfg.BootstrapGames = splitList(g)
	}

	return cfg
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
