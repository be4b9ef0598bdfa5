package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"clusterview/internal/config"
)

func exportConfig(t *testing.T, input string) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Input = input
	cfg.Export.Path = filepath.Join(t.TempDir(), "out.png")
	return cfg
}

func writeInput(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "cluster.txt")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestExportChart_MissingFile(t *testing.T) {
	cfg := exportConfig(t, filepath.Join(t.TempDir(), "cluster.txt"))
	var stderr bytes.Buffer

	assert.Equal(t, 1, exportChart(cfg, zap.NewNop(), &stderr))
	assert.Contains(t, stderr.String(), "Missing "+cfg.Input)
	assert.NotContains(t, stderr.String(), "Corrupt")
	assert.NoFileExists(t, cfg.Export.Path)
}

func TestExportChart_CorruptFile(t *testing.T) {
	cfg := exportConfig(t, writeInput(t, "X Y Cluster\nabc 1.0 A\n"))
	var stderr bytes.Buffer

	assert.Equal(t, 1, exportChart(cfg, zap.NewNop(), &stderr))
	assert.Contains(t, stderr.String(), "Corrupt "+cfg.Input)
	assert.Contains(t, stderr.String(), "line 2")
	assert.NotContains(t, stderr.String(), "Missing")
	assert.NoFileExists(t, cfg.Export.Path)
}

func TestExportChart_WritesPNG(t *testing.T) {
	cfg := exportConfig(t, writeInput(t, "X Y Cluster\n1.0 2.0 A1\n3.5 0.5 A1\n2.0 4,0 B\n"))
	var stderr bytes.Buffer

	require.Equal(t, 0, exportChart(cfg, zap.NewNop(), &stderr))
	assert.Empty(t, stderr.String())

	data, err := os.ReadFile(cfg.Export.Path)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), data[:4])
}

func TestExportChart_LargeValues(t *testing.T) {
	cfg := exportConfig(t, writeInput(t, "10,000,000 10,000,000 A\n1 1 B\n"))
	var stderr bytes.Buffer

	require.Equal(t, 0, exportChart(cfg, zap.NewNop(), &stderr))
	assert.FileExists(t, cfg.Export.Path)
}
