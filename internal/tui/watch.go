package tui

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// fileChangedMsg reports a write or create event on a watched directory.
type fileChangedMsg struct{ path string }

type watchErrMsg struct{ err error }

// startWatch watches the directory holding path. Editors often replace the
// file instead of writing it in place, so the file itself is not watched.
func (m *Model) startWatch(path string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	if m.watcher == nil {
		w, err := fsnotify.NewWatcher()
		if err != nil {
			m.logger.Warn("watch disabled", zap.Error(err))
			m.status = "watch error: " + err.Error()
			return
		}
		m.watcher = w
	} else if m.watchPath != "" {
		_ = m.watcher.Remove(filepath.Dir(m.watchPath))
	}
	if err := m.watcher.Add(filepath.Dir(abs)); err != nil {
		m.logger.Warn("watch failed", zap.String("dir", filepath.Dir(abs)), zap.Error(err))
		m.status = "watch error: " + err.Error()
		return
	}
	m.watchPath = abs
	m.logger.Debug("watching", zap.String("path", abs))
}

func (m *Model) stopWatch() {
	if m.watcher != nil {
		_ = m.watcher.Close()
		m.watcher = nil
	}
}

// waitForChange blocks until the watcher reports a relevant event. A closed
// watcher yields a nil message.
func waitForChange(w *fsnotify.Watcher) tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return nil
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
					return fileChangedMsg{path: filepath.Clean(ev.Name)}
				}
			case err, ok := <-w.Errors:
				if !ok {
					return nil
				}
				return watchErrMsg{err: err}
			}
		}
	}
}

// handleChange reloads the watched file. A failed reload keeps the chart that
// is already on screen.
func (m Model) handleChange(msg fileChangedMsg) (Model, tea.Cmd) {
	if m.watcher == nil {
		return m, nil
	}
	if msg.path == m.watchPath {
		prev := m.reg
		if err := m.loadPath(m.watchPath); err != nil {
			m.status = "reload failed, showing previous data: " + err.Error()
		} else {
			m.logger.Info("reloaded on change", zap.String("path", m.watchPath), zap.Int("previous_nodes", prev.Len()))
		}
	}
	return m, waitForChange(m.watcher)
}
