// Package config reads server settings from the environment, loading a
// .env file first when one is present.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the server settings.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string
	// DBPath is the SQLite database file.
	DBPath string
	// PhotosDir is where processed item photos are written.
	PhotosDir string
	// MaxNameLength bounds category and size names; zero means
	// unbounded.
	MaxNameLength int
	// RequireDescription rejects items with a blank description.
	RequireDescription bool
}

// Load reads .env (if present) and the process environment, falling
// back to defaults.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Addr:               ":8080",
		DBPath:             "estoque.db",
		PhotosDir:          "photos",
		RequireDescription: true,
	}

	if v := os.Getenv("ESTOQUE_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("ESTOQUE_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("ESTOQUE_PHOTOS_DIR"); v != "" {
		cfg.PhotosDir = v
	}
	if v := os.Getenv("ESTOQUE_MAX_NAME_LENGTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxNameLength = n
		}
	}
	if v := os.Getenv("ESTOQUE_REQUIRE_DESCRIPTION"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.RequireDescription = b
		}
	}

	return cfg
}
