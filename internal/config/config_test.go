package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", t.TempDir())
	require.NoError(t, err)

	want := DefaultConfig()
	assert.Equal(t, want.Log, cfg.Log)
	assert.Equal(t, want.Export, cfg.Export)
	assert.Equal(t, want.Watch, cfg.Watch)
	assert.Equal(t, want.Render, cfg.Render)
	assert.Empty(t, cfg.File)
}

func TestLoadYAMLFromSearchPath(t *testing.T) {
	dir := t.TempDir()
	content := `log:
  level: debug
  format: json
export:
  precision: 8
  notes: false
watch:
  debounce: 1s
render:
  width: 320
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "geomodel.yaml"), []byte(content), 0o644))

	cfg, err := Load("", dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 8, cfg.Export.Precision)
	assert.False(t, cfg.Export.Notes)
	assert.Equal(t, time.Second, cfg.Watch.Debounce)
	assert.Equal(t, 320, cfg.Render.Width)
	assert.Equal(t, 600, cfg.Render.Height, "unset keys keep their default")
	assert.Equal(t, "geomodel.yaml", filepath.Base(cfg.File))
}

func TestLoadExplicitTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	content := `[export]
precision = 6

[render]
height = 240
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Export.Precision)
	assert.Equal(t, 240, cfg.Render.Height)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("GEOMODEL_LOG_LEVEL", "error")
	t.Setenv("GEOMODEL_RENDER_WIDTH", "1024")

	cfg, err := Load("", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, 1024, cfg.Render.Width)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"zero precision", func(c *Config) { c.Export.Precision = 0 }, "export.precision"},
		{"negative precision", func(c *Config) { c.Export.Precision = -2 }, "export.precision"},
		{"negative debounce", func(c *Config) { c.Watch.Debounce = -time.Second }, "watch.debounce"},
		{"zero width", func(c *Config) { c.Render.Width = 0 }, "render"},
	}

	require.NoError(t, DefaultConfig().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr), "expected ConfigError, got %v", err)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestConfigErrorMessage(t *testing.T) {
	err := &ConfigError{Field: "render", Message: "too small"}
	assert.Equal(t, "config error in field 'render': too small", err.Error())
}
