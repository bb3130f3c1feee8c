package config

import (
	"runtime"

	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration.
type Config struct {
	// Worker pool
	WorkerLanes int `env:"WORKER_LANES" envDefault:"0"`
	QueueDepth  int `env:"QUEUE_DEPTH"  envDefault:"32"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`

	// Debug server (optional - leave empty to disable)
	MetricsAddr string `env:"METRICS_ADDR" envDefault:""`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// Lanes resolves the configured lane count. Zero means one lane per
// available CPU.
func (c *Config) Lanes() int {
	if c.WorkerLanes > 0 {
		return c.WorkerLanes
	}

	return runtime.NumCPU()
}
