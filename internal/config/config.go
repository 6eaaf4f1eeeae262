package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	Storage StorageConfig `mapstructure:"storage"`
	UI      UIConfig      `mapstructure:"ui"`
	Opener  OpenerConfig  `mapstructure:"opener"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// CatalogConfig holds movie catalog (TMDB) configuration
type CatalogConfig struct {
	APIKey            string        `mapstructure:"api_key"`
	BaseURL           string        `mapstructure:"base_url"`
	ImageBaseURL      string        `mapstructure:"image_base_url"`
	PosterSize        string        `mapstructure:"poster_size"` // e.g. "w500"
	Page              int           `mapstructure:"page"`
	Timeout           time.Duration `mapstructure:"timeout"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second"`
}

// StorageConfig holds local persistence configuration
type StorageConfig struct {
	DataDir string `mapstructure:"data_dir"` // empty = memory only
}

// UIConfig holds UI configuration
type UIConfig struct {
	ToastDuration time.Duration `mapstructure:"toast_duration"`
	OverviewLimit int           `mapstructure:"overview_limit"`
	DefaultSort   string        `mapstructure:"default_sort"`
}

// OpenerConfig holds the external viewer used for posters and catalog pages
type OpenerConfig struct {
	Command string   `mapstructure:"command"` // empty = system default
	Args    []string `mapstructure:"args"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			BaseURL:           "https://api.themoviedb.org/3",
			ImageBaseURL:      "https://image.tmdb.org/t/p",
			PosterSize:        "w500",
			Page:              1,
			Timeout:           30 * time.Second,
			RequestsPerSecond: 20,
		},
		Storage: StorageConfig{
			DataDir: defaultDataPath(),
		},
		UI: UIConfig{
			ToastDuration: 2 * time.Second,
			OverviewLimit: 150,
			DefaultSort:   "popularity.desc",
		},
		Opener: OpenerConfig{
			Args: []string{},
		},
		Logging: LoggingConfig{
			File:  filepath.Join(defaultDataPath(), "moviehouse.log"),
			Level: "INFO",
		},
	}
}

// defaultDataPath returns the default data directory for the current OS
func defaultDataPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "moviehouse")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "moviehouse")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "moviehouse")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "moviehouse")
	}
}

// DefaultConfigFile returns the path SaveConfig writes to when none is given
func DefaultConfigFile() string {
	return filepath.Join(defaultConfigPath(), "config.yaml")
}

// newViper returns a viper instance seeded with defaults so that every key
// can be overridden from the environment (MOVIEHOUSE_CATALOG_API_KEY etc.)
func newViper() *viper.Viper {
	v := viper.New()
	def := DefaultConfig()

	v.SetDefault("catalog.api_key", def.Catalog.APIKey)
	v.SetDefault("catalog.base_url", def.Catalog.BaseURL)
	v.SetDefault("catalog.image_base_url", def.Catalog.ImageBaseURL)
	v.SetDefault("catalog.poster_size", def.Catalog.PosterSize)
	v.SetDefault("catalog.page", def.Catalog.Page)
	v.SetDefault("catalog.timeout", def.Catalog.Timeout)
	v.SetDefault("catalog.requests_per_second", def.Catalog.RequestsPerSecond)
	v.SetDefault("storage.data_dir", def.Storage.DataDir)
	v.SetDefault("ui.toast_duration", def.UI.ToastDuration)
	v.SetDefault("ui.overview_limit", def.UI.OverviewLimit)
	v.SetDefault("ui.default_sort", def.UI.DefaultSort)
	v.SetDefault("opener.command", def.Opener.Command)
	v.SetDefault("opener.args", def.Opener.Args)
	v.SetDefault("logging.file", def.Logging.File)
	v.SetDefault("logging.level", def.Logging.Level)

	v.SetEnvPrefix("MOVIEHOUSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfig loads configuration from file and environment.
// configFile overrides the search path; a missing default file is not an error.
func LoadConfig(configFile string) (*Config, error) {
	v := newViper()

	if configFile != "" {
		v.SetConfigFile(ExpandPath(configFile))
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(defaultConfigPath())
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	cfg.Storage.DataDir = ExpandPath(cfg.Storage.DataDir)
	cfg.Logging.File = ExpandPath(cfg.Logging.File)
	if cfg.Catalog.Page < 1 {
		cfg.Catalog.Page = 1
	}
	if cfg.UI.OverviewLimit < 1 {
		cfg.UI.OverviewLimit = DefaultConfig().UI.OverviewLimit
	}

	return cfg, nil
}

// SaveConfig writes the configuration as YAML. An empty configFile
// writes to DefaultConfigFile.
func SaveConfig(cfg *Config, configFile string) error {
	if configFile == "" {
		configFile = DefaultConfigFile()
	}
	configFile = ExpandPath(configFile)

	if err := os.MkdirAll(filepath.Dir(configFile), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()

	// Set fields individually to ensure correct key names (snake_case)
	v.Set("catalog.api_key", cfg.Catalog.APIKey)
	v.Set("catalog.base_url", cfg.Catalog.BaseURL)
	v.Set("catalog.image_base_url", cfg.Catalog.ImageBaseURL)
	v.Set("catalog.poster_size", cfg.Catalog.PosterSize)
	v.Set("catalog.page", cfg.Catalog.Page)
	v.Set("catalog.timeout", cfg.Catalog.Timeout.String())
	v.Set("catalog.requests_per_second", cfg.Catalog.RequestsPerSecond)

	v.Set("storage.data_dir", cfg.Storage.DataDir)

	v.Set("ui.toast_duration", cfg.UI.ToastDuration.String())
	v.Set("ui.overview_limit", cfg.UI.OverviewLimit)
	v.Set("ui.default_sort", cfg.UI.DefaultSort)

	v.Set("opener.command", cfg.Opener.Command)
	v.Set("opener.args", cfg.Opener.Args)

	v.Set("logging.file", cfg.Logging.File)
	v.Set("logging.level", cfg.Logging.Level)

	v.SetConfigType("yaml")
	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// IsConfigured returns true if an API key is set
func (c *Config) IsConfigured() bool {
	return strings.TrimSpace(c.Catalog.APIKey) != ""
}

// ExpandPath expands a leading ~ to the user's home directory
func ExpandPath(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
