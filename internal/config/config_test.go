package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "LOG_LEVEL", "LETTER_MODEL", "LETTER_POLISH_TIMEOUT",
		"LETTER_POLISH_DISABLED", "RATE_LIMIT_PER_MINUTE", "LETTER_CACHE_PATH",
		"OTEL_EXPORTER_OTLP_ENDPOINT", "SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("port: got %q", cfg.Port)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("log level: got %q", cfg.LogLevel)
	}
	if cfg.Model != "" {
		t.Fatalf("model should default to empty, got %q", cfg.Model)
	}
	if cfg.PolishTimeout != 4*time.Second {
		t.Fatalf("polish timeout: got %v", cfg.PolishTimeout)
	}
	if cfg.PolishDisabled {
		t.Fatal("polish should default to enabled")
	}
	if cfg.RateLimitPerMinute != 5 {
		t.Fatalf("rate limit: got %d", cfg.RateLimitPerMinute)
	}
	if cfg.CachePath != "" || cfg.OTLPEndpoint != "" {
		t.Fatal("cache path and OTLP endpoint should default to empty")
	}
	if cfg.ReadTimeout != 15*time.Second || cfg.WriteTimeout != 30*time.Second {
		t.Fatalf("server timeouts: got %v/%v", cfg.ReadTimeout, cfg.WriteTimeout)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("LETTER_MODEL", "claude-sonnet-4-20250514")
	t.Setenv("LETTER_POLISH_TIMEOUT", "10s")
	t.Setenv("LETTER_POLISH_DISABLED", "true")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "20")
	t.Setenv("LETTER_CACHE_PATH", "/tmp/rewrites.db")

	cfg := Load()
	if cfg.Port != "9000" {
		t.Fatalf("port: got %q", cfg.Port)
	}
	if cfg.Model != "claude-sonnet-4-20250514" {
		t.Fatalf("model: got %q", cfg.Model)
	}
	if cfg.PolishTimeout != 10*time.Second {
		t.Fatalf("polish timeout: got %v", cfg.PolishTimeout)
	}
	if !cfg.PolishDisabled {
		t.Fatal("polish should be disabled")
	}
	if cfg.RateLimitPerMinute != 20 {
		t.Fatalf("rate limit: got %d", cfg.RateLimitPerMinute)
	}
	if cfg.CachePath != "/tmp/rewrites.db" {
		t.Fatalf("cache path: got %q", cfg.CachePath)
	}
}

func TestLoadIgnoresUnparsableValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("LETTER_POLISH_TIMEOUT", "soon")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "-3")
	t.Setenv("LETTER_POLISH_DISABLED", "maybe")

	cfg := Load()
	if cfg.PolishTimeout != 4*time.Second {
		t.Fatalf("bad duration should fall back, got %v", cfg.PolishTimeout)
	}
	if cfg.RateLimitPerMinute != 5 {
		t.Fatalf("non-positive limit should fall back, got %d", cfg.RateLimitPerMinute)
	}
	if cfg.PolishDisabled {
		t.Fatal("bad bool should fall back to enabled")
	}
}
