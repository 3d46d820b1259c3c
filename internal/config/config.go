package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults
const (
	DefaultBaseURL       = "http://localhost:8000/api"
	DefaultLegacyToken   = "entropy"
	DefaultCatalogSource = "api"
	DefaultTimeout       = 15 * time.Second
	DefaultLogLevel      = "info"
	DefaultLanguage      = "en"
)

// Config represents the application configuration
type Config struct {
	API         APIConfig    `yaml:"api"`
	Export      ExportConfig `yaml:"export"`
	Log         LogConfig    `yaml:"log"`
	UI          UIConfig     `yaml:"ui"`
	KeyMappings KeyMappings  `yaml:"key_mappings"`
	ColorScheme ColorScheme  `yaml:"theme"`
}

// APIConfig locates and authenticates against the backend
type APIConfig struct {
	BaseURL       string        `yaml:"base_url"`
	Token         string        `yaml:"token,omitempty"`
	LegacyToken   string        `yaml:"legacy_token,omitempty"`
	CatalogSource string        `yaml:"catalog_source"` // api | legacy
	Timeout       time.Duration `yaml:"timeout"`
}

// ExportConfig controls where export files and their history go
type ExportConfig struct {
	Dir       string `yaml:"dir"`
	HistoryDB string `yaml:"history_db,omitempty"`
}

// LogConfig controls the log file
type LogConfig struct {
	Level string `yaml:"level"`
}

// UIConfig holds presentation settings
type UIConfig struct {
	Language string `yaml:"language"` // en | fr
}

// Default returns the configuration used when no file exists
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// loadThemeFile loads and merges theme from UGCCTL_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("UGCCTL_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// applyEnv applies UGCCTL_* overrides on top of the file
func applyEnv(c *Config) {
	if v := os.Getenv("UGCCTL_API_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("UGCCTL_API_TOKEN"); v != "" {
		c.API.Token = v
	}
	if v := os.Getenv("UGCCTL_EXPORT_DIR"); v != "" {
		c.Export.Dir = v
	}
	if v := os.Getenv("UGCCTL_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	var config Config

	configPath, err := getConfigPath()
	if err == nil {
		data, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &config); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
			}
		case !os.IsNotExist(err):
			return nil, err
		}
	}

	loadThemeFile(&config)
	applyEnv(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate rejects values that cannot be used
func (c *Config) Validate() error {
	switch c.API.CatalogSource {
	case "api", "legacy":
	default:
		return fmt.Errorf("invalid api.catalog_source '%s' (must be: api, legacy)", c.API.CatalogSource)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log.level '%s' (must be: debug, info, warn, error)", c.Log.Level)
	}
	switch c.UI.Language {
	case "en", "fr":
	default:
		return fmt.Errorf("invalid ui.language '%s' (must be: en, fr)", c.UI.Language)
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("invalid api.timeout %s", c.API.Timeout)
	}
	return nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	// May hold the API token
	return os.WriteFile(configPath, data, 0o600)
}

// Path returns the config file location
func Path() (string, error) {
	return getConfigPath()
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "ugcctl", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "ugcctl", "config.yaml"), nil
}

// defaultExportDir is ~/Downloads when it exists, the working directory otherwise
func defaultExportDir() string {
	home, err := os.UserHomeDir()
	if err == nil {
		dl := filepath.Join(home, "Downloads")
		if info, err := os.Stat(dl); err == nil && info.IsDir() {
			return dl
		}
	}
	return "."
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	if c.API.LegacyToken == "" {
		c.API.LegacyToken = DefaultLegacyToken
	}
	if c.API.CatalogSource == "" {
		c.API.CatalogSource = DefaultCatalogSource
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = DefaultTimeout
	}
	if c.Export.Dir == "" {
		c.Export.Dir = defaultExportDir()
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.UI.Language == "" {
		c.UI.Language = DefaultLanguage
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
