package config

import (
	"testing"
	"time"

	"ferrix-agent/internal/systemd"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("log level = %q", cfg.LogLevel)
	}
	if cfg.SizeBase != 2 {
		t.Errorf("size base = %d", cfg.SizeBase)
	}
	if cfg.CollectTimeout != 30*time.Second {
		t.Errorf("collect timeout = %v", cfg.CollectTimeout)
	}
	if cfg.DBusBus != systemd.SystemBus {
		t.Errorf("bus = %q", cfg.DBusBus)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("FERRIX_LOG_LEVEL", "DEBUG")
	t.Setenv("FERRIX_SIZE_BASE", "10")
	t.Setenv("FERRIX_COLLECT_TIMEOUT", "5s")
	t.Setenv("FERRIX_DBUS_BUS", "session")
	t.Setenv("FERRIX_LOG_JSON", "yes")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "debug" || cfg.SizeBase != 10 || !cfg.LogJSON {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.CollectTimeout != 5*time.Second || cfg.DBusBus != systemd.SessionBus {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	t.Setenv("FERRIX_SIZE_BASE", "16")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for base 16")
	}

	t.Setenv("FERRIX_SIZE_BASE", "2")
	t.Setenv("FERRIX_LOG_LEVEL", "verbose")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for bad log level")
	}

	t.Setenv("FERRIX_LOG_LEVEL", "info")
	t.Setenv("FERRIX_DBUS_BUS", "user")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for bad bus")
	}
}
