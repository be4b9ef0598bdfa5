package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"clusterview/internal/chart"
	"clusterview/internal/cluster"
	"clusterview/internal/config"
	"clusterview/internal/export"
	"clusterview/internal/logging"
	"clusterview/internal/tui"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "YAML config file")
	exportPath := flag.String("export", "", "write the chart to an image (png, svg, pdf, ...) instead of opening the viewer")
	watch := flag.Bool("watch", false, "reload the input file when it changes")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [path]\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	if flag.NArg() > 0 {
		cfg.Input = flag.Arg(0)
	}
	if *exportPath != "" {
		cfg.Export.Path = *exportPath
	}
	if *watch {
		cfg.Watch = true
	}

	interactive := cfg.Export.Path == ""
	logger, err := logging.New(cfg.Log, interactive)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	defer func() { _ = logger.Sync() }()
	logger.Debug("config loaded", zap.String("source", *configPath), zap.String("input", cfg.Input))

	if !interactive {
		return exportChart(cfg, logger, os.Stderr)
	}

	m := tui.NewWithPath(cfg.Input, tui.Options{
		Title:  cfg.Chart.Title,
		Chart:  cfg.Chart.Options(),
		Watch:  cfg.Watch,
		Logger: logger,
	})
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		logger.Error("viewer failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// exportChart renders cfg.Input to cfg.Export.Path and returns the exit code.
// Failures are reported on stderr with the same guidance the viewer shows.
func exportChart(cfg *config.Config, logger *zap.Logger, stderr io.Writer) int {
	reg, err := cluster.Load(cfg.Input)
	if err != nil {
		logger.Error("load failed", zap.String("path", cfg.Input), zap.Error(err))
		header, detail := cluster.Guidance(err, cfg.Input)
		fmt.Fprintf(stderr, "%s\n%s\n", header, detail)
		return 1
	}
	c := chart.Build(reg, cfg.Chart.Options())
	if err := export.Save(c, cfg.Chart.Title, cfg.Export.Path, cfg.Export.Width, cfg.Export.Height); err != nil {
		logger.Error("export failed", zap.String("path", cfg.Export.Path), zap.Error(err))
		fmt.Fprintln(stderr, err)
		return 1
	}
	logger.Info("export written",
		zap.String("path", cfg.Export.Path),
		zap.Int("clusters", len(reg.Keys())),
		zap.Int("nodes", reg.Len()),
	)
	return 0
}
