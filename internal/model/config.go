package model

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// DefaultDashboardLimit is how many upcoming assignments the dashboard shows.
const DefaultDashboardLimit = 10

// DatabaseConfig locates the SQLite database file.
type DatabaseConfig struct {
	// Path may start with ~, which is expanded to the home directory.
	Path string `mapstructure:"path" yaml:"path"`
}

// TabsConfig holds tab defaults.
type TabsConfig struct {
	// DefaultName is the tab created on first run.
	DefaultName string `mapstructure:"default_name" yaml:"default_name"`
}

// DashboardConfig holds dashboard preferences.
type DashboardConfig struct {
	Limit int `mapstructure:"limit" yaml:"limit"`
}

// LogConfig controls where the interactive UI writes its log.
type LogConfig struct {
	File string `mapstructure:"file" yaml:"file"`
}

// DisplayConfig holds UI/rendering preferences.
type DisplayConfig struct {
	Theme string `mapstructure:"theme" yaml:"theme"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	Database  DatabaseConfig  `mapstructure:"database" yaml:"database"`
	Tabs      TabsConfig      `mapstructure:"tabs" yaml:"tabs"`
	Dashboard DashboardConfig `mapstructure:"dashboard" yaml:"dashboard"`
	Log       LogConfig       `mapstructure:"log" yaml:"log"`
	Display   DisplayConfig   `mapstructure:"display" yaml:"display"`
}

// configDir is ~/.config/assignments, or the working directory when the
// home directory cannot be resolved.
func configDir() string {
	home, err := homedir.Dir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "assignments")
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/assignments/config.yaml.
func DefaultConfigPath() string {
	return filepath.Join(configDir(), "config.yaml")
}

// defaultAppConfig returns a sensible default configuration.
func defaultAppConfig() *AppConfig {
	dir := configDir()
	return &AppConfig{
		Database:  DatabaseConfig{Path: filepath.Join(dir, "assignments.db")},
		Tabs:      TabsConfig{DefaultName: DefaultTabName},
		Dashboard: DashboardConfig{Limit: DefaultDashboardLimit},
		Log:       LogConfig{File: filepath.Join(dir, "debug.log")},
		Display:   DisplayConfig{Theme: "default"},
	}
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// Values from a .env file in the working directory and ASSIGNMENTS_*
// environment variables override the file. If the file does not exist,
// defaults are used.
func LoadConfig(path string) (*AppConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	defaults := defaultAppConfig()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("ASSIGNMENTS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set defaults so missing keys resolve to sensible values.
	v.SetDefault("database.path", defaults.Database.Path)
	v.SetDefault("tabs.default_name", defaults.Tabs.DefaultName)
	v.SetDefault("dashboard.limit", defaults.Dashboard.Limit)
	v.SetDefault("log.file", defaults.Log.File)
	v.SetDefault("display.theme", defaults.Display.Theme)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		var pathErr *os.PathError
		if !errors.As(err, &notFound) && !errors.As(err, &pathErr) {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := &AppConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if strings.TrimSpace(cfg.Tabs.DefaultName) == "" {
		cfg.Tabs.DefaultName = DefaultTabName
	}
	if cfg.Dashboard.Limit <= 0 {
		cfg.Dashboard.Limit = DefaultDashboardLimit
	}

	var err error
	if cfg.Database.Path, err = homedir.Expand(cfg.Database.Path); err != nil {
		return nil, fmt.Errorf("expanding database path: %w", err)
	}
	if cfg.Log.File, err = homedir.Expand(cfg.Log.File); err != nil {
		return nil, fmt.Errorf("expanding log path: %w", err)
	}

	return cfg, nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("database", cfg.Database)
	v.Set("tabs", cfg.Tabs)
	v.Set("dashboard", cfg.Dashboard)
	v.Set("log", cfg.Log)
	v.Set("display", cfg.Display)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
