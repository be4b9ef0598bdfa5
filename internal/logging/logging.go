// Package logging builds the zap logger used across clusterview.
package logging

import (
	"fmt"

	"go.uber.org/zap"

	"clusterview/internal/config"
)

// New returns a logger for cfg. The terminal viewer owns the screen, so in
// interactive mode logs go to cfg.File or nowhere; otherwise they default to
// stderr.
func New(cfg config.Log, interactive bool) (*zap.Logger, error) {
	if interactive && cfg.File == "" {
		return zap.NewNop(), nil
	}
	var zc zap.Config
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	zc.Level = level
	out := "stderr"
	if cfg.File != "" {
		out = cfg.File
	}
	zc.OutputPaths = []string{out}
	zc.ErrorOutputPaths = []string{out}
	return zc.Build()
}
