package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds application configuration. Values come from an optional YAML
// file, overridden by environment variables.
type Config struct {
	Addr   string `yaml:"addr"`    // PROPDESK_ADDR, default ":8080"
	DBPath string `yaml:"db_path"` // PROPDESK_DB, default "propdesk.db"

	// DefaultCompanyName names the company the dashboard scopes to when a
	// request names none. It is resolved to the company's id at startup and
	// passed explicitly to consumers rather than held as process-wide
	// mutable state.
	DefaultCompanyName string `yaml:"default_company_name"` // PROPDESK_COMPANY, optional
}

// Load reads configuration with defaults, then the YAML file named by
// PROPDESK_CONFIG (if set), then environment variable overrides.
func Load() (Config, error) {
	cfg := Config{
		Addr:   ":8080",
		DBPath: "propdesk.db",
	}

	if path := os.Getenv("PROPDESK_CONFIG"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
	}

	if v := os.Getenv("PROPDESK_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("PROPDESK_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("PROPDESK_COMPANY"); v != "" {
		cfg.DefaultCompanyName = v
	}

	return cfg, nil
}
