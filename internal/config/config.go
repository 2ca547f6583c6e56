package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Local server
	BindHost        string
	BasePort        int
	PortAttempts    int
	ServeDir        string
	LANProbeAddr    string
	RenderMarkdown  bool
	ShutdownTimeout time.Duration

	// Sidebar synchronizer
	SiteDir       string
	NavFile       string // optional YAML navigation tree; empty uses the built-in one
	WatchDebounce time.Duration

	LogLevel slog.Level
}

func Load() Config {
	cfg := Config{
		BindHost:        envOr("BIND_HOST", "0.0.0.0"),
		BasePort:        envInt("BASE_PORT", 8000),
		PortAttempts:    envInt("PORT_ATTEMPTS", 100),
		ServeDir:        envOr("SERVE_DIR", "."),
		LANProbeAddr:    envOr("LAN_PROBE_ADDR", "8.8.8.8:80"),
		RenderMarkdown:  envBool("RENDER_MARKDOWN", false),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT", 10*time.Second),

		SiteDir:       envOr("SITE_DIR", "."),
		NavFile:       os.Getenv("NAV_FILE"),
		WatchDebounce: envDuration("WATCH_DEBOUNCE", 300*time.Millisecond),

		LogLevel: envLevel("LOG_LEVEL", slog.LevelInfo),
	}

	if cfg.PortAttempts <= 0 {
		cfg.PortAttempts = 100
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}
	if cfg.WatchDebounce <= 0 {
		cfg.WatchDebounce = 300 * time.Millisecond
	}

	return cfg
}

func (c Config) Validate() error {
	if c.BasePort < 0 || c.BasePort > 65535 {
		return fmt.Errorf("BASE_PORT %d is out of range", c.BasePort)
	}
	if last := c.BasePort + c.PortAttempts - 1; last > 65535 {
		return fmt.Errorf("BASE_PORT %d with PORT_ATTEMPTS %d runs past port 65535", c.BasePort, c.PortAttempts)
	}
	for name, dir := range map[string]string{"SERVE_DIR": c.ServeDir, "SITE_DIR": c.SiteDir} {
		info, err := os.Stat(dir)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("%s %q is not a directory", name, dir)
		}
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envLevel(key string, fallback slog.Level) slog.Level {
	if v := os.Getenv(key); v != "" {
		var l slog.Level
		if err := l.UnmarshalText([]byte(strings.TrimSpace(v))); err == nil {
			return l
		}
	}
	return fallback
}
