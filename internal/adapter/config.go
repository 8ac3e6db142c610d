package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	History HistoryConfig `mapstructure:"history"`
	Browser BrowserConfig `mapstructure:"browser"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// CatalogConfig locates the two catalog documents
type CatalogConfig struct {
	Location         string `mapstructure:"location"`          // Directory or http(s) base URL
	PackagesFile     string `mapstructure:"packages_file"`     // Package list, relative to Location
	TranslationsFile string `mapstructure:"translations_file"` // Translation map, relative to Location
	GoVersion        string `mapstructure:"go_version"`        // Version tag for documentation links
	DocHost          string `mapstructure:"doc_host"`          // Documentation host for links
}

// HistoryConfig controls the recently-viewed store
type HistoryConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"` // Directory for the history database
	Limit   int    `mapstructure:"limit"`
}

// BrowserConfig holds the command used to open documentation links
type BrowserConfig struct {
	Command string   `mapstructure:"command"` // empty for system default
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
			Location:         "./js",
			PackagesFile:     "go1.25-full.json",
			TranslationsFile: "zh-cn.json",
			GoVersion:        "go1.25",
			DocHost:          "https://pkg.go.dev",
		},
		History: HistoryConfig{
			Enabled: true,
			Path:    defaultCachePath(),
			Limit:   20,
		},
		Browser: BrowserConfig{
			Args: []string{},
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "godex", "godex.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "godex", "godex.log")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "godex")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "godex")
	}
}

// defaultCachePath returns the default cache directory path for the current OS
func defaultCachePath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "godex", "cache")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "godex", "cache")
	}
}

// LoadConfig loads configuration from file and environment.
// An explicit configFile must exist; otherwise config.yaml is searched in
// the config directory and the working directory, and may be absent.
func LoadConfig(configFile string) (*Config, error) {
	return loadConfig(viper.New(), configFile)
}

func loadConfig(v *viper.Viper, configFile string) (*Config, error) {
	cfg := DefaultConfig()
	setDefaults(v, cfg)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(defaultConfigPath())
		v.AddConfigPath(".")
	}

	// Environment variable overrides, e.g. GODEX_CATALOG_LOCATION
	v.SetEnvPrefix("GODEX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || configFile != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override it
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("catalog.location", cfg.Catalog.Location)
	v.SetDefault("catalog.packages_file", cfg.Catalog.PackagesFile)
	v.SetDefault("catalog.translations_file", cfg.Catalog.TranslationsFile)
	v.SetDefault("catalog.go_version", cfg.Catalog.GoVersion)
	v.SetDefault("catalog.doc_host", cfg.Catalog.DocHost)

	v.SetDefault("history.enabled", cfg.History.Enabled)
	v.SetDefault("history.path", cfg.History.Path)
	v.SetDefault("history.limit", cfg.History.Limit)

	v.SetDefault("browser.command", cfg.Browser.Command)
	v.SetDefault("browser.args", cfg.Browser.Args)

	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.level", cfg.Logging.Level)
}

// HistoryPath returns the history directory, or "" for memory-only history
func (c *Config) HistoryPath() string {
	if !c.History.Enabled {
		return ""
	}
	return c.History.Path
}
