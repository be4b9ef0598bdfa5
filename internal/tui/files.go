package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	list "github.com/charmbracelet/bubbles/list"
	"go.uber.org/zap"

	"clusterview/internal/chart"
	"clusterview/internal/cluster"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		if e.IsDir() || !cluster.Supported(e.Name()) {
			continue
		}
		name := e.Name()
		items = append(items, fileItem{title: name, desc: filepath.Ext(name), path: filepath.Join(m.cwd, name)})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no cluster files in current directory"
	}
}

// loadPath reads p into a fresh registry. On failure the current chart is
// left untouched.
func (m *Model) loadPath(p string) error {
	reg, err := cluster.Load(p)
	if err != nil {
		m.logger.Warn("load failed", zap.String("path", p), zap.Error(err))
		m.status = "load error: " + err.Error()
		return err
	}
	m.selPath = p
	m.setRegistry(reg, filepath.Base(p))
	m.logger.Info("file loaded",
		zap.String("path", p),
		zap.Int("clusters", len(reg.Keys())),
		zap.Int("nodes", reg.Len()),
		zap.Float64("max_x", reg.MaxX()),
		zap.Float64("max_y", reg.MaxY()),
	)
	return nil
}

// setRegistry swaps in a new registry and rebuilds the chart from it.
func (m *Model) setRegistry(reg *cluster.Registry, name string) {
	m.reg = reg
	m.chart = chart.Build(reg, m.opts.Chart)
	m.hidden = map[string]bool{}
	m.zoom = 1.0
	m.offsetX, m.offsetY = 0, 0
	m.hovering, m.hoverHasXY = false, false
	m.inspectPopup = ""
	if m.showTable {
		m.refreshTable()
	}
	m.status = fmt.Sprintf("loaded: %s  clusters=%d nodes=%d max=(%s, %s)",
		name, len(reg.Keys()), reg.Len(), chart.Label(reg.MaxX()), chart.Label(reg.MaxY()))
}
