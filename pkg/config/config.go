package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	AppDir         = "fitness"
	ConfigFilename = "config.yaml"
	EnvFilename    = ".env"
)

// Environment variables that override the config file
const (
	EnvEndpoint = "FITNESS_ENDPOINT"
	EnvToken    = "FITNESS_TOKEN"
	EnvAPIKey   = "FITNESS_API_KEY"
	EnvLogLevel = "FITNESS_LOG_LEVEL"
	EnvLogDir   = "FITNESS_LOG_DIR"
)

// Config represents the client configuration
type Config struct {
	API     APIConfig `yaml:"api"`
	Catalog string    `yaml:"catalog,omitempty"` // optional catalog override file
	UI      UIConfig  `yaml:"ui"`
	Log     LogConfig `yaml:"log"`
}

// APIConfig locates and authenticates against the settings service
type APIConfig struct {
	Endpoint string        `yaml:"endpoint"`
	Token    string        `yaml:"token,omitempty"`
	APIKey   string        `yaml:"api_key,omitempty"`
	Timeout  time.Duration `yaml:"timeout"`
}

// UIConfig controls form presentation
type UIConfig struct {
	ShowHints    bool `yaml:"show_hints"`
	CompactWidth int  `yaml:"compact_width"` // below this width hints are hidden
}

// LogConfig mirrors logging.Config
type LogConfig struct {
	Dir        string `yaml:"dir,omitempty"`
	Level      string `yaml:"level"`
	Format     string `yaml:"format"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	Debug      bool   `yaml:"debug"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			Timeout: 15 * time.Second,
		},
		UI: UIConfig{
			ShowHints:    true,
			CompactWidth: 80,
		},
		Log: LogConfig{
			Level:      "info",
			Format:     "json",
			MaxSizeMB:  10,
			MaxBackups: 5,
		},
	}
}

// DefaultPath returns the per-user config file location
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(dir, AppDir, ConfigFilename), nil
}

// DefaultLogDir returns the directory log files go to when none is configured
func DefaultLogDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppDir)
}

// Read loads a config file. A missing file yields the defaults.
func Read(path string) (*Config, error) {
	cfg := DefaultConfig()

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML %s: %w", path, err)
	}
	return cfg, nil
}

// Write saves a config file, creating its directory
func Write(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	content, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	// The file may carry a token
	if err := os.WriteFile(path, content, 0600); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}

// Load reads the config file, then applies .env and environment overrides
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg, err := Read(path)
	if err != nil {
		return nil, err
	}

	if err := loadDotEnv(EnvFilename); err != nil {
		return nil, err
	}
	cfg.ApplyEnv()
	return cfg, nil
}

func loadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	// Variables already present in the environment win
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides fields from the environment
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvEndpoint); v != "" {
		c.API.Endpoint = v
	}
	if v := os.Getenv(EnvToken); v != "" {
		c.API.Token = v
	}
	if v := os.Getenv(EnvAPIKey); v != "" {
		c.API.APIKey = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvLogDir); v != "" {
		c.Log.Dir = v
	}
}

// Validate checks that the settings service can be reached
func (c *Config) Validate() error {
	if c.API.Endpoint == "" {
		return fmt.Errorf("no API endpoint configured. Run 'fitness init --endpoint <url>' or set %s", EnvEndpoint)
	}
	if c.API.Token == "" && c.API.APIKey == "" {
		return fmt.Errorf("no credentials configured. Set a token in the config file or %s", EnvToken)
	}
	return nil
}
