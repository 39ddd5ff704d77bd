package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "5175" {
		t.Fatalf("expected default port 5175, got %q", cfg.Port)
	}
	if cfg.MaxGuesses != 6 || cfg.RequestTimeout != 10*time.Second {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Production() {
		t.Fatal("default env should not be production")
	}
	if cfg.TokenTTL() != 14*24*time.Hour {
		t.Fatalf("token ttl = %v", cfg.TokenTTL())
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DAILY_TZ", "Asia/Tokyo")
	t.Setenv("NODE_ENV", "production")
	t.Setenv("REQUEST_TIMEOUT", "3s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" || !cfg.Production() || cfg.RequestTimeout != 3*time.Second {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	loc, err := cfg.Location()
	if err != nil || loc.String() != "Asia/Tokyo" {
		t.Fatalf("location = %v, %v", loc, err)
	}
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("MAX_GUESSES", "not-an-int")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"zero guesses", map[string]string{"MAX_GUESSES": "0"}},
		{"zero expiry", map[string]string{"JWT_EXPIRES_DAYS": "0"}},
		{"bad zone", map[string]string{"DAILY_TZ": "Mars/Olympus"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
