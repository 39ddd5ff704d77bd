// Package config loads server settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every tunable the server reads at startup.
type Config struct {
	Port      string `env:"PORT" envDefault:"5175"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogPretty bool   `env:"LOG_PRETTY" envDefault:"false"`

	DBPath string `env:"DB_PATH" envDefault:"./data/app.db"`

	JWTSecret      string `env:"JWT_SECRET" envDefault:"dev_secret_change_me"`
	JWTExpiresDays int    `env:"JWT_EXPIRES_DAYS" envDefault:"14"`
	CookieName     string `env:"COOKIE_NAME" envDefault:"nerdle_token"`
	ClientOrigin   string `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`
	NodeEnv        string `env:"NODE_ENV" envDefault:"development"`

	// PoolFile overrides the embedded equation pool when set.
	PoolFile string `env:"POOL_FILE"`
	// DailyTZ is the IANA zone whose calendar day selects the daily answer.
	DailyTZ        string        `env:"DAILY_TZ" envDefault:"UTC"`
	MaxGuesses     int           `env:"MAX_GUESSES" envDefault:"6"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses Config from the environment and checks it.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot run with.
func (c Config) Validate() error {
	if c.MaxGuesses < 1 {
		return fmt.Errorf("MAX_GUESSES must be positive, got %d", c.MaxGuesses)
	}
	if c.JWTExpiresDays < 1 {
		return fmt.Errorf("JWT_EXPIRES_DAYS must be positive, got %d", c.JWTExpiresDays)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Production reports whether cookies should be marked Secure.
func (c Config) Production() bool { return c.NodeEnv == "production" }

// Location resolves DailyTZ.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.DailyTZ)
	if err != nil {
		return nil, fmt.Errorf("DAILY_TZ %q: %w", c.DailyTZ, err)
	}
	return loc, nil
}

// TokenTTL is the lifetime of issued session tokens.
func (c Config) TokenTTL() time.Duration {
	return time.Duration(c.JWTExpiresDays) * 24 * time.Hour
}
