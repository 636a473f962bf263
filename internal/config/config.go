// Package config holds server configuration loaded from defaults, the
// process environment, and command-line flags (in that order).
package config

import (
	"os"
	"time"
)

// ServerConfig holds configuration for the MemberGate server.
type ServerConfig struct {
	Addr       string        // Listen address (default ":8080")
	LogLevel   string        // Log level: debug, info, warn, error
	LogFormat  string        // Log format: text, json
	DBPath     string        // SQLite database path (":memory:" for testing)
	AssetsDir  string        // Directory served under /static/ (default "public")
	SessionTTL time.Duration // Session lifetime (default 1 hour)
}

// DefaultServerConfig returns sensible defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:       ":8080",
		LogLevel:   "info",
		LogFormat:  "text",
		AssetsDir:  "public",
		SessionTTL: time.Hour,
	}
}

// FromEnv overlays MEMBERGATE_* environment variables on cfg.
// Unset variables leave the existing value untouched.
func FromEnv(cfg ServerConfig) ServerConfig {
	if v := os.Getenv("MEMBERGATE_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("MEMBERGATE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("MEMBERGATE_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("MEMBERGATE_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("MEMBERGATE_ASSETS"); v != "" {
		cfg.AssetsDir = v
	}
	if v := os.Getenv("MEMBERGATE_SESSION_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.SessionTTL = d
		}
	}
	return cfg
}
