// Package config loads companion settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the companion's settings.
type Config struct {
	DBPath    string `env:"COMPANION_DB"`
	UserID    string `env:"COMPANION_USER" envDefault:"default"`
	LogLevel  string `env:"COMPANION_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"COMPANION_LOG_FORMAT" envDefault:"console"`
}

// Load reads the given .env files (".env" when none are named) into the
// environment, skipping missing ones, and parses the result. Variables
// already set in the environment win over .env values.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return Parse()
}

// Parse reads the configuration from the environment only.
func Parse() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if c.DBPath == "" {
		c.DBPath = DefaultDBPath()
	}
	return c, nil
}

// DefaultDBPath is ~/.companion/companion.db, or companion.db in the working
// directory when the home directory is unknown.
func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "companion.db"
	}
	return filepath.Join(home, ".companion", "companion.db")
}
