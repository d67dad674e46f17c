// Package config reads runtime settings from the environment.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/alexanderramin/checkpoint/internal/domain"
)

// Config holds all runtime settings. Command-line flags override it per
// command.
type Config struct {
	Source     domain.SourceKind
	Endpoint   string
	DBPath     string
	TimeoutMs  int
	MaxRetries int
	// RetryDelayMs is the first HTTP retry wait; each later retry doubles it.
	RetryDelayMs int
	Listen       string
	LogCalls     bool
	LogFile      string

	// Mock source behaviour.
	MockFailureRate float64
	MockLatencyMs   int

	// Breaker trips after this many consecutive failed calls.
	BreakerFailures int
	// ServeFailureRate makes the HTTP backend fail a share of requests.
	ServeFailureRate float64
}

// DefaultConfig returns the built-in defaults: the mock source with a 20%
// failure rate and half a second of latency.
func DefaultConfig() Config {
	return Config{
		Source:          domain.SourceMock,
		Endpoint:        "http://localhost:8420",
		DBPath:          defaultDBPath(),
		TimeoutMs:       5000,
		MaxRetries:      2,
		RetryDelayMs:    200,
		Listen:          ":8420",
		MockFailureRate: 0.2,
		MockLatencyMs:   500,
		BreakerFailures: 3,
	}
}

// LoadConfig reads CHECKPOINT_* variables, falling back to defaults for any
// unset or malformed value.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("CHECKPOINT_SOURCE"); v != "" && domain.ValidSourceKinds[v] {
		cfg.Source = domain.SourceKind(v)
	}
	if v := os.Getenv("CHECKPOINT_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("CHECKPOINT_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("CHECKPOINT_LISTEN"); v != "" {
		cfg.Listen = v
	}
	if v := os.Getenv("CHECKPOINT_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("CHECKPOINT_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	applyPositiveInt(&cfg.TimeoutMs, "CHECKPOINT_TIMEOUT_MS")
	applyNonNegativeInt(&cfg.MaxRetries, "CHECKPOINT_MAX_RETRIES")
	applyPositiveInt(&cfg.RetryDelayMs, "CHECKPOINT_RETRY_DELAY_MS")
	applyNonNegativeInt(&cfg.MockLatencyMs, "CHECKPOINT_MOCK_LATENCY_MS")
	applyPositiveInt(&cfg.BreakerFailures, "CHECKPOINT_BREAKER_FAILURES")
	applyRate(&cfg.MockFailureRate, "CHECKPOINT_MOCK_FAILURE_RATE")
	applyRate(&cfg.ServeFailureRate, "CHECKPOINT_SERVE_FAILURE_RATE")

	return cfg
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".checkpoint", "checkpoint.db")
	}
	return filepath.Join(home, ".checkpoint", "checkpoint.db")
}

func applyPositiveInt(dst *int, env string) {
	if n, err := strconv.Atoi(os.Getenv(env)); err == nil && n > 0 {
		*dst = n
	}
}

func applyNonNegativeInt(dst *int, env string) {
	if n, err := strconv.Atoi(os.Getenv(env)); err == nil && n >= 0 {
		*dst = n
	}
}

func applyRate(dst *float64, env string) {
	if f, err := strconv.ParseFloat(os.Getenv(env), 64); err == nil && f >= 0 && f <= 1 {
		*dst = f
	}
}
