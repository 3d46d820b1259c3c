package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// isolate points every lookup at an empty temp config home
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("UGCCTL_THEME_FILE", "")
	t.Setenv("UGCCTL_API_URL", "")
	t.Setenv("UGCCTL_API_TOKEN", "")
	t.Setenv("UGCCTL_EXPORT_DIR", "")
	t.Setenv("UGCCTL_LOG_LEVEL", "")
	return dir
}

func writeConfig(t *testing.T, home, content string) {
	t.Helper()
	configDir := filepath.Join(home, "ugcctl")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
}

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	if defaults.Quit != "q" {
		t.Errorf("Default Quit key = %s, want q", defaults.Quit)
	}
	if defaults.Toggle != "t" {
		t.Errorf("Default Toggle key = %s, want t", defaults.Toggle)
	}
	if defaults.Search != "/" {
		t.Errorf("Default Search key = %s, want /", defaults.Search)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	if cfg.API.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %s, want %s", cfg.API.BaseURL, DefaultBaseURL)
	}
	if cfg.API.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %s, want %s", cfg.API.Timeout, DefaultTimeout)
	}
	if cfg.API.CatalogSource != "api" {
		t.Errorf("CatalogSource = %s, want api", cfg.API.CatalogSource)
	}
	if cfg.KeyMappings.Quit != "q" {
		t.Errorf("Loaded config Quit key = %s, want q (default)", cfg.KeyMappings.Quit)
	}
	if cfg.Export.Dir == "" {
		t.Error("Export.Dir should have a default")
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	home := isolate(t)
	writeConfig(t, home, `api:
  base_url: "https://ugc.example.com/api"
  token: "abc"
  catalog_source: legacy
  timeout: 3s
export:
  dir: /tmp/exports
ui:
  language: fr
key_mappings:
  quit: "x"
  toggle: "space"
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with config file failed: %v", err)
	}

	if cfg.API.BaseURL != "https://ugc.example.com/api" {
		t.Errorf("BaseURL = %s", cfg.API.BaseURL)
	}
	if cfg.API.Token != "abc" {
		t.Errorf("Token = %s, want abc", cfg.API.Token)
	}
	if cfg.API.CatalogSource != "legacy" {
		t.Errorf("CatalogSource = %s, want legacy", cfg.API.CatalogSource)
	}
	if cfg.API.Timeout != 3*time.Second {
		t.Errorf("Timeout = %s, want 3s", cfg.API.Timeout)
	}
	if cfg.Export.Dir != "/tmp/exports" {
		t.Errorf("Export.Dir = %s", cfg.Export.Dir)
	}
	if cfg.UI.Language != "fr" {
		t.Errorf("Language = %s, want fr", cfg.UI.Language)
	}
	if cfg.KeyMappings.Quit != "x" {
		t.Errorf("Loaded Quit key = %s, want x", cfg.KeyMappings.Quit)
	}
	if cfg.KeyMappings.Toggle != "space" {
		t.Errorf("Loaded Toggle key = %s, want space", cfg.KeyMappings.Toggle)
	}

	// Missing keys fall back to defaults
	if cfg.KeyMappings.Search != "/" {
		t.Errorf("Search key = %s, want / (default)", cfg.KeyMappings.Search)
	}
	if cfg.API.LegacyToken != DefaultLegacyToken {
		t.Errorf("LegacyToken = %s, want default", cfg.API.LegacyToken)
	}
}

func TestEnvOverrides(t *testing.T) {
	home := isolate(t)
	writeConfig(t, home, `api:
  base_url: "http://from-file/api"
`)
	t.Setenv("UGCCTL_API_URL", "http://from-env:9000/api")
	t.Setenv("UGCCTL_API_TOKEN", "env-token")
	t.Setenv("UGCCTL_EXPORT_DIR", "/var/exports")
	t.Setenv("UGCCTL_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.API.BaseURL != "http://from-env:9000/api" {
		t.Errorf("BaseURL = %s, env should win", cfg.API.BaseURL)
	}
	if cfg.API.Token != "env-token" {
		t.Errorf("Token = %s", cfg.API.Token)
	}
	if cfg.Export.Dir != "/var/exports" {
		t.Errorf("Export.Dir = %s", cfg.Export.Dir)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %s", cfg.Log.Level)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"catalog source", "api:\n  catalog_source: graphql\n"},
		{"log level", "log:\n  level: verbose\n"},
		{"language", "ui:\n  language: de\n"},
		{"malformed yaml", "api: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := isolate(t)
			writeConfig(t, home, tt.content)

			if _, err := Load(); err == nil {
				t.Error("Load() should fail")
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	isolate(t)

	cfg := Default()
	cfg.API.Token = "persisted"
	cfg.KeyMappings.Quit = "Q"
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	path, err := Path()
	if err != nil {
		t.Fatalf("Path() failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("config not written: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("config mode = %v, want 0600", info.Mode().Perm())
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loaded.API.Token != "persisted" || loaded.KeyMappings.Quit != "Q" {
		t.Errorf("saved values not loaded back: %+v", loaded.API)
	}
}
