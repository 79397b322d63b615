// Package config provides configuration for the nightwatch dashboard.
// The monitored repository, workflow and refresh cadence are compile-time
// constants; only the snapshot store backend is selectable at runtime.
package config

import (
	"os"
	"path/filepath"
)

// Monitored target. The dashboard tracks exactly one workflow of one
// public repository.
const (
	RepoOwner    = "nightwatch-hq"
	RepoName     = "platform"
	WorkflowName = "Nightly Build"
)

// MaxRecentBuilds caps how many runs a snapshot keeps for display.
const MaxRecentBuilds = 10

// RefreshHours are the local hours-of-day at which a new remote fetch is
// permitted.
var RefreshHours = []int{6, 13, 19, 23}

// Config holds the runtime configuration.
type Config struct {
	// CacheDSN selects the Postgres snapshot store when non-empty.
	CacheDSN string
	// CacheDir is where the file-backed snapshot store keeps its data.
	CacheDir string
}

// LoadFromEnv loads configuration from environment variables. Nothing is
// required; absent variables fall back to the file store in the user cache
// directory.
func LoadFromEnv() *Config {
	cfg := &Config{
		CacheDSN: os.Getenv("NIGHTWATCH_CACHE_DSN"),
		CacheDir: os.Getenv("NIGHTWATCH_CACHE_DIR"),
	}

	if cfg.CacheDir == "" {
		if base, err := os.UserCacheDir(); err == nil {
			cfg.CacheDir = filepath.Join(base, "nightwatch")
		} else {
			cfg.CacheDir = ".nightwatch"
		}
	}

	return cfg
}
