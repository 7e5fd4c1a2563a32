// Package config handles configuration loading for thrivemum.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/diogo/thrivemum/internal/models"
)

// Environment variables read at process start
const (
	EnvAPIURL  = "GEMINI_API_URL"
	EnvAPIKey  = "GEMINI_API_KEY"
	EnvBackend = "THRIVEMUM_BACKEND"
	EnvOffline = "THRIVEMUM_OFFLINE"
)

// DefaultRefreshInterval is how often screen data is recomputed
const DefaultRefreshInterval = 5 * time.Minute

// MarkdownConfig configures markdown rendering options
type MarkdownConfig struct {
	Style            string `yaml:"style"`             // "dark", "light", "notty" or path to JSON theme
	EnableEmoji      bool   `yaml:"enable_emoji"`      // Convert :emoji: to unicode
	PreserveNewLines bool   `yaml:"preserve_newlines"` // Preserve original line breaks
}

// Config represents the user configuration
type Config struct {
	// Backend selects the generate transport: "rest" or "sdk"
	Backend string `yaml:"backend"`
	// Endpoint is the full generateContent URL used by the rest backend
	Endpoint string `yaml:"endpoint"`
	// BaseURL optionally overrides the SDK's API host. When empty the sdk
	// backend derives it from a non-default Endpoint.
	BaseURL string `yaml:"base_url,omitempty"`
	// APIKey is usually supplied through GEMINI_API_KEY rather than the file
	APIKey string `yaml:"api_key,omitempty"`
	// Model is the model name used by the sdk backend
	Model string `yaml:"model"`
	// Offline answers every question from the local rule table
	Offline         bool           `yaml:"offline"`
	Verbose         bool           `yaml:"verbose"`
	CopyToClipboard bool           `yaml:"copy_to_clipboard"`
	RefreshInterval string         `yaml:"refresh_interval"`
	Markdown        MarkdownConfig `yaml:"markdown"`
}

// DefaultMarkdownConfig returns the default markdown configuration
func DefaultMarkdownConfig() MarkdownConfig {
	return MarkdownConfig{
		Style:            "dark",
		EnableEmoji:      true,
		PreserveNewLines: true,
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Backend:         models.BackendREST,
		Endpoint:        models.DefaultEndpoint,
		Model:           models.DefaultModel,
		Offline:         false,
		Verbose:         false,
		CopyToClipboard: false,
		RefreshInterval: DefaultRefreshInterval.String(),
		Markdown:        DefaultMarkdownConfig(),
	}
}

// GetConfigDir returns the configuration directory path
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".thrivemum"), nil
}

// EnsureConfigDir creates the configuration directory if it doesn't exist
func EnsureConfigDir() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	// 0o700: the config may hold an API key
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	return configDir, nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.yaml"), nil
}

// GetLogPath returns the log file used while the chat screen owns the terminal
func GetLogPath() (string, error) {
	configDir, err := EnsureConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "thrivemum.log"), nil
}

// LoadConfig loads the configuration from the default path
func LoadConfig() (Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		return cfg, err
	}
	return Load(path)
}

// Load reads path (a missing file yields defaults) and applies env overrides
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			cfg = DefaultConfig()
			cfg.applyEnvOverrides()
			return cfg, fmt.Errorf("failed to parse config file: %w", err)
		}
	case !os.IsNotExist(err):
		cfg.applyEnvOverrides()
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg.applyEnvOverrides()
	cfg.normalize()
	return cfg, nil
}

// SaveConfig writes cfg to path. The API key is never written.
func SaveConfig(cfg Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	cfg.APIKey = ""
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvAPIURL); v != "" {
		c.Endpoint = v
	}
	if v := os.Getenv(EnvAPIKey); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv(EnvBackend); v != "" {
		c.Backend = strings.ToLower(v)
	}
	switch strings.ToLower(os.Getenv(EnvOffline)) {
	case "1", "true", "yes":
		c.Offline = true
	}
}

// normalize fills blanks left by a partial config file
func (c *Config) normalize() {
	if c.Backend == "" {
		c.Backend = models.BackendREST
	}
	if c.Endpoint == "" {
		c.Endpoint = models.DefaultEndpoint
	}
	if c.Model == "" {
		c.Model = models.DefaultModel
	}
	if c.Markdown.Style == "" {
		c.Markdown.Style = DefaultMarkdownConfig().Style
	}
}

// Validate checks values that cannot be defaulted
func (c Config) Validate() error {
	switch c.Backend {
	case models.BackendREST, models.BackendSDK:
	default:
		return fmt.Errorf("unknown backend %q (want %s or %s)", c.Backend, models.BackendREST, models.BackendSDK)
	}
	if c.RefreshInterval != "" {
		if _, err := time.ParseDuration(c.RefreshInterval); err != nil {
			return fmt.Errorf("invalid refresh_interval: %w", err)
		}
	}
	return nil
}

// GetRefreshInterval parses RefreshInterval, defaulting on blank or bad input
func (c Config) GetRefreshInterval() time.Duration {
	d, err := time.ParseDuration(c.RefreshInterval)
	if err != nil || d <= 0 {
		return DefaultRefreshInterval
	}
	return d
}

// HasCredentials reports whether remote calls can be attempted
func (c Config) HasCredentials() bool {
	return c.APIKey != "" && c.Endpoint != ""
}

// SDKBaseURL returns the API root the sdk backend should use, or "" for the
// SDK default. A custom Endpoint such as
// https://proxy.test/gemini/v1beta/models/m:generateContent yields
// https://proxy.test/gemini/.
func (c Config) SDKBaseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	if c.Endpoint == "" || c.Endpoint == models.DefaultEndpoint {
		return ""
	}
	u, err := url.Parse(c.Endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	path := u.Path
	if i := strings.Index(path, "/v1"); i >= 0 {
		path = path[:i]
	} else {
		path = ""
	}
	return u.Scheme + "://" + u.Host + strings.TrimSuffix(path, "/") + "/"
}

// MaskedAPIKey returns the key with all but the last four characters hidden
func (c Config) MaskedAPIKey() string {
	if c.APIKey == "" {
		return "(not set)"
	}
	if len(c.APIKey) <= 4 {
		return strings.Repeat("*", len(c.APIKey))
	}
	return strings.Repeat("*", len(c.APIKey)-4) + c.APIKey[len(c.APIKey)-4:]
}
