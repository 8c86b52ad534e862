package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/propdesk/propdesk/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	// Unset any env vars that might be set.
	t.Setenv("PROPDESK_CONFIG", "")
	t.Setenv("PROPDESK_ADDR", "")
	t.Setenv("PROPDESK_DB", "")
	t.Setenv("PROPDESK_COMPANY", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want %q", cfg.Addr, ":8080")
	}
	if cfg.DBPath != "propdesk.db" {
		t.Errorf("DBPath = %q, want %q", cfg.DBPath, "propdesk.db")
	}
	if cfg.DefaultCompanyName != "" {
		t.Errorf("DefaultCompanyName = %q, want empty", cfg.DefaultCompanyName)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PROPDESK_CONFIG", "")
	t.Setenv("PROPDESK_ADDR", ":9090")
	t.Setenv("PROPDESK_DB", "/tmp/test.db")
	t.Setenv("PROPDESK_COMPANY", "Alpha Estates")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Addr != ":9090" {
		t.Errorf("Addr = %q, want %q", cfg.Addr, ":9090")
	}
	if cfg.DBPath != "/tmp/test.db" {
		t.Errorf("DBPath = %q, want %q", cfg.DBPath, "/tmp/test.db")
	}
	if cfg.DefaultCompanyName != "Alpha Estates" {
		t.Errorf("DefaultCompanyName = %q, want %q", cfg.DefaultCompanyName, "Alpha Estates")
	}
}

func TestLoadFromYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "propdesk.yaml")
	content := "addr: \":7070\"\ndb_path: data/propdesk.db\ndefault_company_name: Beta Holdings\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	t.Setenv("PROPDESK_CONFIG", path)
	t.Setenv("PROPDESK_ADDR", "")
	t.Setenv("PROPDESK_DB", "")
	t.Setenv("PROPDESK_COMPANY", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Addr != ":7070" {
		t.Errorf("Addr = %q, want %q", cfg.Addr, ":7070")
	}
	if cfg.DBPath != "data/propdesk.db" {
		t.Errorf("DBPath = %q, want %q", cfg.DBPath, "data/propdesk.db")
	}
	if cfg.DefaultCompanyName != "Beta Holdings" {
		t.Errorf("DefaultCompanyName = %q, want %q", cfg.DefaultCompanyName, "Beta Holdings")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "propdesk.yaml")
	if err := os.WriteFile(path, []byte("addr: \":7070\"\n"), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	t.Setenv("PROPDESK_CONFIG", path)
	t.Setenv("PROPDESK_ADDR", ":6060")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":6060" {
		t.Errorf("Addr = %q, want env override %q", cfg.Addr, ":6060")
	}
}

func TestLoadRejectsMissingConfigFile(t *testing.T) {
	t.Setenv("PROPDESK_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))

	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
