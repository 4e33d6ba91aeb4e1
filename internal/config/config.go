package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"ferrix-agent/internal/systemd"
)

const HardcodedVersion = "V0.3"

type Config struct {
	Hostname       string
	LogJSON        bool
	LogLevel       string
	SizeBase       int
	HelperPath     string
	CollectTimeout time.Duration
	DBusBus        systemd.Bus
	AgentVersion   string
}

func Load() (Config, error) {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown-host"
	}

	cfg := Config{
		Hostname:       hostname,
		LogJSON:        envBool("FERRIX_LOG_JSON", false),
		LogLevel:       strings.ToLower(env("FERRIX_LOG_LEVEL", "info")),
		SizeBase:       envInt("FERRIX_SIZE_BASE", 2),
		HelperPath:     env("FERRIX_HELPER_PATH", ""),
		CollectTimeout: envDuration("FERRIX_COLLECT_TIMEOUT", 30*time.Second),
		DBusBus:        systemd.Bus(strings.ToLower(env("FERRIX_DBUS_BUS", string(systemd.SystemBus)))),
		AgentVersion:   HardcodedVersion,
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unsupported log level %q", c.LogLevel)
	}
	if c.SizeBase != 2 && c.SizeBase != 10 {
		return fmt.Errorf("FERRIX_SIZE_BASE must be 2 or 10, got %d", c.SizeBase)
	}
	if c.CollectTimeout <= 0 {
		return fmt.Errorf("FERRIX_COLLECT_TIMEOUT must be > 0")
	}
	switch c.DBusBus {
	case systemd.SystemBus, systemd.SessionBus:
	default:
		return fmt.Errorf("unsupported bus %q", c.DBusBus)
	}
	return nil
}

// BuildLogger builds the process logger. Logs go to stderr since
// stdout carries the inventory payload.
func BuildLogger(cfg Config) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	hOpts := &slog.HandlerOptions{Level: level}
	if cfg.LogJSON {
		return slog.New(slog.NewJSONHandler(os.Stderr, hOpts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, hOpts))
}

func env(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func envInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return i
}

func envBool(key string, fallback bool) bool {
	v := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	if v == "" {
		return fallback
	}
	switch v {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return fallback
	}
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
