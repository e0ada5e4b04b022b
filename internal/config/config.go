// Package config loads ReadQuest settings from READQUEST_* environment
// variables.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/caarlos0/env/v11"

	"github.com/dohyeon0608/ReadQuest/internal/llm"
	"github.com/dohyeon0608/ReadQuest/internal/store"
)

const logFileName = "readquest.log"

// Config is the process-wide configuration.
type Config struct {
	DBPath  string `env:"READQUEST_DB"`
	LogMode string `env:"READQUEST_LOG_MODE" envDefault:"dev"`
	LogFile string `env:"READQUEST_LOG_FILE"`

	LLM llm.Config
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads the environment on top of the built-in defaults. When the
// selected LLM provider has no READQUEST_* key, the bare vendor keys
// (GEMINI_API_KEY and friends) are probed instead.
func Load() (Config, error) {
	cfg := Config{LLM: llm.DefaultConfig()}
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	if !cfg.LLM.HasKey() {
		if found, ok := llm.DiscoverConfig(); ok {
			found.Timeout = cfg.LLM.Timeout
			cfg.LLM = found
		}
	}
	return cfg, nil
}

// ResolveDBPath picks the database path. A non-empty flag wins over
// READQUEST_DB, which wins over the XDG default.
func (c Config) ResolveDBPath(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if c.DBPath != "" {
		return c.DBPath, nil
	}
	return store.DefaultDBPath()
}

// ResolveLogFile returns READQUEST_LOG_FILE or a log file next to dbPath.
func (c Config) ResolveLogFile(dbPath string) string {
	if c.LogFile != "" {
		return c.LogFile
	}
	return filepath.Join(filepath.Dir(dbPath), logFileName)
}
