// Package config reads runtime configuration from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPort               = "8080"
	defaultLogLevel           = "info"
	defaultPolishTimeout      = 4 * time.Second
	defaultRateLimitPerMinute = 5
	defaultReadTimeout        = 15 * time.Second
	defaultWriteTimeout       = 30 * time.Second
)

// Config captures all runtime settings. The API key itself is deliberately
// not held here; it is read from the environment at call time.
type Config struct {
	Port               string
	LogLevel           string
	Model              string
	PolishTimeout      time.Duration
	PolishDisabled     bool
	RateLimitPerMinute int
	CachePath          string
	OTLPEndpoint       string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
}

// Load builds a Config from the environment, applying defaults for anything
// unset or unparsable.
func Load() Config {
	return Config{
		Port:               envString("PORT", defaultPort),
		LogLevel:           envString("LOG_LEVEL", defaultLogLevel),
		Model:              envString("LETTER_MODEL", ""),
		PolishTimeout:      envDuration("LETTER_POLISH_TIMEOUT", defaultPolishTimeout),
		PolishDisabled:     envBool("LETTER_POLISH_DISABLED", false),
		RateLimitPerMinute: envInt("RATE_LIMIT_PER_MINUTE", defaultRateLimitPerMinute),
		CachePath:          envString("LETTER_CACHE_PATH", ""),
		OTLPEndpoint:       envString("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		ReadTimeout:        envDuration("SERVER_READ_TIMEOUT", defaultReadTimeout),
		WriteTimeout:       envDuration("SERVER_WRITE_TIMEOUT", defaultWriteTimeout),
	}
}

func envString(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func envInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func envBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func envDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
