package sched

import (
	"os"

	yaml "github.com/goccy/go-yaml"
)

// Config mirrors config.yml. It is fixed for the scheduler's lifetime.
type Config struct {
	AgingFactor  float64 `yaml:"aging_factor"`   // 0.1 (by default); higher = fairer, less optimal
	MaxQueueSize int     `yaml:"max_queue_size"` // 10000 (by default)
	Preemptive   bool    `yaml:"preemptive"`     // true (by default)
	// TimeQuantum is reserved for a round-robin fallback on equal
	// priorities. No scheduling path reads it; it is carried so config
	// files stay stable.
	TimeQuantum   float64 `yaml:"time_quantum"`   // 10.0 (by default)
	EnableLogging bool    `yaml:"enable_logging"` // false (by default)
}

// DefaultConfig returns the configuration used when no file overrides it.
func DefaultConfig() Config {
	return Config{
		AgingFactor:  0.1,
		MaxQueueSize: 10_000,
		Preemptive:   true,
		TimeQuantum:  10.0,
	}
}

// Load reads YAML and overrides defaults; empty path = defaults only
func Load(path string) Config {
	cfg := DefaultConfig()

	if path == "" {
		return cfg
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	_ = yaml.Unmarshal(data, &cfg)

	// sanity clamps; aging_factor = 0 is legal (pure Smith's rule)
	if cfg.AgingFactor < 0 {
		cfg.AgingFactor = 0.1
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 10_000
	}
	if cfg.TimeQuantum <= 0 {
		cfg.TimeQuantum = 10.0
	}

	return cfg
}
