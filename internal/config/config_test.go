package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clusterview/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "cluster.txt", cfg.Input)
	assert.Equal(t, 1.0, cfg.Chart.Margin)
	assert.Equal(t, 0.5, cfg.Chart.Tick)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Export.Path)
	assert.False(t, cfg.Watch)
}

func TestLoad_File(t *testing.T) {
	p := filepath.Join(t.TempDir(), "clusterview.yaml")
	require.NoError(t, os.WriteFile(p, []byte(`
input: data/points.txt
watch: true
chart:
  tick: 0.25
  title: Demo
export:
  path: out.png
log:
  level: debug
`), 0o644))

	cfg, err := config.Load(p)
	require.NoError(t, err)

	assert.Equal(t, "data/points.txt", cfg.Input)
	assert.True(t, cfg.Watch)
	assert.Equal(t, 0.25, cfg.Chart.Tick)
	assert.Equal(t, 1.0, cfg.Chart.Margin, "unset keys keep defaults")
	assert.Equal(t, "Demo", cfg.Chart.Title)
	assert.Equal(t, "out.png", cfg.Export.Path)
	assert.Equal(t, 16.0, cfg.Export.Width)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("CLUSTERVIEW_INPUT", "env.txt")
	t.Setenv("CLUSTERVIEW_EXPORT", "env.svg")
	t.Setenv("CLUSTERVIEW_WATCH", "true")
	t.Setenv("CLUSTERVIEW_LOG_LEVEL", "warn")
	t.Setenv("CLUSTERVIEW_LOG_FILE", "cv.log")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "env.txt", cfg.Input)
	assert.Equal(t, "env.svg", cfg.Export.Path)
	assert.True(t, cfg.Watch)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "cv.log", cfg.Log.File)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("chart: [1, 2"), 0o644))
	_, err = config.Load(bad)
	assert.Error(t, err)

	t.Setenv("CLUSTERVIEW_WATCH", "sometimes")
	_, err = config.Load("")
	assert.ErrorContains(t, err, "CLUSTERVIEW_WATCH")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{"valid", func(*config.Config) {}, ""},
		{"empty input", func(c *config.Config) { c.Input = "" }, "Input"},
		{"zero tick", func(c *config.Config) { c.Chart.Tick = 0 }, "Tick"},
		{"negative margin", func(c *config.Config) { c.Chart.Margin = -1 }, "Margin"},
		{"bad level", func(c *config.Config) { c.Log.Level = "loud" }, "Level"},
		{"zero width", func(c *config.Config) { c.Export.Width = 0 }, "Width"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config validation failed")
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestChart_Options(t *testing.T) {
	opts := config.Default().Chart.Options()
	assert.Equal(t, 1.0, opts.Margin)
	assert.Equal(t, 0.5, opts.Tick)
	assert.Equal(t, "X Axis", opts.XLabel)
}
