// Package config loads clusterview settings from defaults, an optional YAML
// file and CLUSTERVIEW_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"clusterview/internal/chart"
	"clusterview/internal/cluster"
)

type Config struct {
	// Input is the cluster file shown at startup.
	Input  string `yaml:"input" validate:"required"`
	Watch  bool   `yaml:"watch"`
	Chart  Chart  `yaml:"chart"`
	Export Export `yaml:"export"`
	Log    Log    `yaml:"log"`
}

type Chart struct {
	Title  string  `yaml:"title"`
	Margin float64 `yaml:"margin" validate:"gte=0"`
	Tick   float64 `yaml:"tick" validate:"gt=0"`
	XLabel string  `yaml:"x_label"`
	YLabel string  `yaml:"y_label"`
}

// Options converts the chart section for chart.Build.
func (c Chart) Options() chart.Options {
	return chart.Options{Margin: c.Margin, Tick: c.Tick, XLabel: c.XLabel, YLabel: c.YLabel}
}

// Export configures non-interactive image output. An empty Path means the
// interactive viewer is used.
type Export struct {
	Path   string  `yaml:"path"`
	Width  float64 `yaml:"width_cm" validate:"gt=0"`
	Height float64 `yaml:"height_cm" validate:"gt=0"`
}

type Log struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
	File        string `yaml:"file"`
	Development bool   `yaml:"development"`
}

func Default() *Config {
	opts := chart.DefaultOptions()
	return &Config{
		Input: cluster.DefaultFile,
		Chart: Chart{
			Title:  "Cluster Records",
			Margin: opts.Margin,
			Tick:   opts.Tick,
			XLabel: opts.XLabel,
			YLabel: opts.YLabel,
		},
		Export: Export{Width: 16, Height: 12},
		Log:    Log{Level: "info"},
	}
}

// Load builds the configuration. An empty path skips the file layer; a named
// file that does not exist is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}
	if err := cfg.loadEnvironment(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadEnvironment() error {
	if v, ok := os.LookupEnv("CLUSTERVIEW_INPUT"); ok && v != "" {
		c.Input = v
	}
	if v, ok := os.LookupEnv("CLUSTERVIEW_EXPORT"); ok && v != "" {
		c.Export.Path = v
	}
	if v, ok := os.LookupEnv("CLUSTERVIEW_WATCH"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("CLUSTERVIEW_WATCH: %w", err)
		}
		c.Watch = b
	}
	if v, ok := os.LookupEnv("CLUSTERVIEW_LOG_LEVEL"); ok && v != "" {
		c.Log.Level = v
	}
	if v, ok := os.LookupEnv("CLUSTERVIEW_LOG_FILE"); ok && v != "" {
		c.Log.File = v
	}
	return nil
}

var validate = validator.New()

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("config validation failed: %s must satisfy %s", fe.Namespace(), fe.Tag())
		}
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}
