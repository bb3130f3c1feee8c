package config_test

import (
	"testing"

	"github.com/iho/payments/internal/infrastructure/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("WORKER_LANES", "")
	t.Setenv("QUEUE_DEPTH", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.WorkerLanes != 0 {
		t.Fatalf("expected default worker lanes 0, got %d", cfg.WorkerLanes)
	}

	if cfg.QueueDepth != 32 {
		t.Fatalf("expected default queue depth 32, got %d", cfg.QueueDepth)
	}

	if cfg.LogLevel != "info" {
		t.Fatalf("expected default log level info, got %s", cfg.LogLevel)
	}

	if cfg.Lanes() < 1 {
		t.Fatalf("expected at least one lane, got %d", cfg.Lanes())
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("WORKER_LANES", "7")
	t.Setenv("QUEUE_DEPTH", "64")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("METRICS_ADDR", ":9102")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.Lanes() != 7 {
		t.Fatalf("expected 7 lanes, got %d", cfg.Lanes())
	}

	if cfg.QueueDepth != 64 {
		t.Fatalf("expected queue depth override, got %d", cfg.QueueDepth)
	}

	if cfg.LogFormat != "json" || cfg.MetricsAddr != ":9102" {
		t.Fatalf("expected overrides to apply, got format=%s addr=%s", cfg.LogFormat, cfg.MetricsAddr)
	}
}

func TestLoadInvalidLaneCount(t *testing.T) {
	t.Setenv("WORKER_LANES", "not-a-number")

	if _, err := config.Load(); err == nil {
		t.Fatalf("expected error for invalid lane count")
	}
}
