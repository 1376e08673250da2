package engine

import (
	"os"
	"strconv"
	"time"

	"github.com/abhisek/adaptic/internal/adaptation"
	"github.com/abhisek/adaptic/internal/coordinator"
	"github.com/abhisek/adaptic/internal/llm"
	"github.com/abhisek/adaptic/internal/mastery"
	"github.com/abhisek/adaptic/internal/session"
)

// Config carries the engine-level tunables. Zero values mean "use the
// component default".
type Config struct {
	// Workers is the coordinator pool size.
	Workers int

	// WindowSize is the K-response adaptation window.
	WindowSize int

	// Decay is the per-day evidence discount in (0,1].
	Decay float64

	// IdleThreshold is the max inter-event gap counted as active time.
	IdleThreshold time.Duration

	// IdleTimeout implicitly ends a session with no events.
	IdleTimeout time.Duration

	// CommitRetention is how long committed-event records are kept for
	// duplicate detection before the janitor prunes them.
	CommitRetention time.Duration

	// LLM configures the recommendation model provider.
	LLM llm.Config
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return Config{
		Workers:         coordinator.DefaultWorkers,
		WindowSize:      adaptation.DefaultWindowSize,
		Decay:           mastery.DefaultDecay,
		IdleThreshold:   session.DefaultIdleThreshold,
		IdleTimeout:     session.DefaultIdleTimeout,
		CommitRetention: 7 * 24 * time.Hour,
		LLM:             llm.DefaultConfig(),
	}
}

// ConfigFromEnv builds a Config from ADAPTIC_* environment variables,
// falling back to defaults for unset or malformed values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	cfg.LLM = llm.ConfigFromEnv()

	if n, ok := envInt("ADAPTIC_WORKERS"); ok && n > 0 {
		cfg.Workers = n
	}
	if n, ok := envInt("ADAPTIC_WINDOW_SIZE"); ok && n > 0 {
		cfg.WindowSize = n
	}
	if f, ok := envFloat("ADAPTIC_DECAY"); ok && f > 0 && f <= 1 {
		cfg.Decay = f
	}
	if d, ok := envDuration("ADAPTIC_IDLE_THRESHOLD"); ok && d > 0 {
		cfg.IdleThreshold = d
	}
	if d, ok := envDuration("ADAPTIC_IDLE_TIMEOUT"); ok && d > 0 {
		cfg.IdleTimeout = d
	}
	if d, ok := envDuration("ADAPTIC_COMMIT_RETENTION"); ok && d > 0 {
		cfg.CommitRetention = d
	}
	return cfg
}

// Options translates the Config into engine options.
func (c Config) Options() []Option {
	return []Option{
		WithCoordinatorOptions(coordinator.WithWorkers(c.Workers)),
		WithAdaptationOptions(adaptation.WithWindowSize(c.WindowSize)),
		WithMasteryOptions(mastery.WithDecay(c.Decay)),
		WithSessionOptions(
			session.WithIdleThreshold(c.IdleThreshold),
			session.WithIdleTimeout(c.IdleTimeout),
		),
	}
}

func envInt(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	return n, err == nil
}

func envFloat(key string) (float64, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	return f, err == nil
}

func envDuration(key string) (time.Duration, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	d, err := time.ParseDuration(v)
	return d, err == nil
}
