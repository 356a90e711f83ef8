// Package config loads the geomodel settings from a config file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. GEOMODEL_LOG_LEVEL
const EnvPrefix = "GEOMODEL"

// LogConfig controls logging
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ExportConfig controls how models are written
type ExportConfig struct {
	Precision int  `mapstructure:"precision"`
	Notes     bool `mapstructure:"notes"`
}

// WatchConfig controls the file watcher
type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce"`
}

// RenderConfig controls PNG snapshots
type RenderConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// Config is the complete configuration
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Export ExportConfig `mapstructure:"export"`
	Watch  WatchConfig  `mapstructure:"watch"`
	Render RenderConfig `mapstructure:"render"`

	// File is the config file that was read, empty when none was found
	File string `mapstructure:"-"`
}

// DefaultConfig returns the built-in settings
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
		Export: ExportConfig{
			Precision: -1,
			Notes:     true,
		},
		Watch: WatchConfig{
			Debounce: 200 * time.Millisecond,
		},
		Render: RenderConfig{
			Width:  800,
			Height: 600,
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("export.precision", d.Export.Precision)
	v.SetDefault("export.notes", d.Export.Notes)
	v.SetDefault("watch.debounce", d.Watch.Debounce)
	v.SetDefault("render.width", d.Render.Width)
	v.SetDefault("render.height", d.Render.Height)
}

// SearchPaths returns the directories searched for geomodel.{yaml,toml,json}
func SearchPaths() []string {
	paths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "geomodel"))
	}
	return paths
}

// Load reads the configuration. With an explicit file that file must
// exist; otherwise the search paths are tried and a missing file means
// defaults. Environment variables override both.
func Load(file string, searchPaths ...string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("geomodel")
		for _, p := range searchPaths {
			v.AddConfigPath(p)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return &ConfigError{Field: "log.format", Message: fmt.Sprintf("unknown format %q, use text or json", c.Log.Format)}
	}
	if c.Export.Precision < -1 || c.Export.Precision == 0 {
		return &ConfigError{Field: "export.precision", Message: "must be -1 (exact) or a positive digit count"}
	}
	if c.Watch.Debounce < 0 {
		return &ConfigError{Field: "watch.debounce", Message: "must not be negative"}
	}
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return &ConfigError{Field: "render", Message: "width and height must be positive"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
