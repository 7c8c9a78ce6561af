package config_test

import (
	"testing"

	"github.com/sashablokhin/memoledger/internal/infrastructure/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("expected default log level info, got %s", cfg.LogLevel)
	}
	if cfg.LogFormat != "console" {
		t.Errorf("expected default log format console, got %s", cfg.LogFormat)
	}
	if cfg.SnapshotRetention != 0 {
		t.Errorf("expected unlimited snapshot retention by default, got %d", cfg.SnapshotRetention)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("SNAPSHOT_RETENTION", "5")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.LogLevel)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("expected log format json, got %s", cfg.LogFormat)
	}
	if cfg.SnapshotRetention != 5 {
		t.Errorf("expected snapshot retention 5, got %d", cfg.SnapshotRetention)
	}
}

func TestLoad_InvalidRetention(t *testing.T) {
	t.Setenv("SNAPSHOT_RETENTION", "not-a-number")

	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for invalid SNAPSHOT_RETENTION")
	}
}
