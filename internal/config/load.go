package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/rubylint/rubylint/internal/lint"
)

// FileName is the config file rubylint looks for.
const FileName = ".rubylint.yml"

// Default returns an empty configuration: every rule at its default
// enabled state and severity.
func Default() *Config {
	return &Config{Rules: make(map[string]RuleCfg)}
}

// Load reads and parses a config file. Any malformed content, including an
// unknown severity name, is a hard error: a run never starts with a
// half-applied configuration.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if cfg.Rules == nil {
		cfg.Rules = make(map[string]RuleCfg)
	}

	for id, rc := range cfg.Rules {
		if rc.Severity == "" {
			continue
		}
		if _, err := lint.ParseSeverity(rc.Severity); err != nil {
			return nil, fmt.Errorf("config for rule %q: %w", id, err)
		}
	}

	return &cfg, nil
}

// Discover walks up the directory tree from startDir looking for a
// .rubylint.yml file. It stops at a directory containing .git (the
// repository root) or at the filesystem root. Returns "" when no config
// file was found.
func Discover(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		// A .git directory marks the repo root; do not search above it.
		if info, err := os.Stat(filepath.Join(dir, ".git")); err == nil && info.IsDir() {
			return "", nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}
