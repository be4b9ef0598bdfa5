package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"clusterview/internal/chart"
	"clusterview/internal/cluster"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		lo := m.layout()
		m.plotW, m.plotH = lo.plotW, lo.plotH
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, lo.contentH-2)
		}
	case fileChangedMsg:
		return m.handleChange(msg)
	case watchErrMsg:
		m.logger.Warn("watch error", zap.Error(msg.err))
		m.status = "watch error: " + msg.err.Error()
		if m.watcher != nil {
			return m, waitForChange(m.watcher)
		}
		return m, nil
	case tea.KeyMsg:
		if m.alert != nil {
			m.stopWatch()
			return m, tea.Quit
		}
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			return m.updatePaste(msg)
		}
		if m.showTable {
			switch msg.String() {
			case "t", "esc":
				m.showTable = false
				m.tbl.Blur()
				return m, nil
			case "ctrl+c", "q":
				m.stopWatch()
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.tbl, cmd = m.tbl.Update(msg)
			return m, cmd
		}
		switch key := msg.String(); key {
		case "ctrl+c", "q":
			m.stopWatch()
			return m, tea.Quit
		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			m.toggleSeries(int(key[0] - '1'))
		case "l":
			m.toggleAll()
		case "+", "=":
			if m.zoom < 64 {
				m.zoom *= 1.2
				m.hovering = false
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.05 {
				m.zoom /= 1.2
				m.hovering = false
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "0":
			m.zoom = 1.0
			m.offsetX, m.offsetY = 0, 0
			m.hovering = false
			m.status = "view reset"
		case "tab":
			m.showSidebar = !m.showSidebar
			lo := m.layout()
			m.plotW, m.plotH = lo.plotW, lo.plotH
			m.hovering, m.hoverHasXY = false, false
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(sidebarWidth-2, lo.contentH-2)
			}
		case "p":
			m.pasteMode = true
			m.ta.SetValue("")
			m.status = "paste mode"
			return m, m.ta.Focus()
		case "h":
			m.helpVisible = !m.helpVisible
		case "t":
			m.showTable = true
			m.refreshTable()
			m.tbl.Focus()
			m.status = fmt.Sprintf("table: %d nodes", m.reg.Len())
		case "i":
			if m.inspectPopup != "" {
				m.inspectPopup = ""
				break
			}
			m.inspect()
		case "esc":
			m.inspectPopup = ""
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					if err := m.loadPath(it.path); err == nil && m.watcher != nil {
						m.startWatch(it.path)
					}
				}
			}
		case "up":
			m.offsetY++
			m.hovering = false
		case "down":
			m.offsetY--
			m.hovering = false
		case "left":
			m.offsetX += 2
			m.hovering = false
		case "right":
			m.offsetX -= 2
			m.hovering = false
		}
	case tea.MouseMsg:
		m.hover(msg.X, msg.Y)
	}
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

// updatePaste edits the paste buffer; ctrl+s parses it as cluster text.
func (m Model) updatePaste(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pasteMode = false
		m.ta.Blur()
		m.status = "paste cancelled"
		return m, nil
	case "ctrl+s":
		text := strings.TrimSpace(m.ta.Value())
		if text == "" {
			m.status = "paste: empty"
			return m, nil
		}
		reg, err := cluster.Read(strings.NewReader(text))
		if err != nil {
			m.status = "paste error: " + err.Error()
			return m, nil
		}
		m.setRegistry(reg, "<pasted>")
		m.logger.Info("pasted data rendered", zap.Int("nodes", reg.Len()))
		m.pasteMode = false
		m.ta.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

func (m *Model) toggleSeries(i int) {
	if i < 0 || i >= len(m.chart.Series) {
		m.status = fmt.Sprintf("no series %d", i+1)
		return
	}
	name := m.chart.Series[i].Name
	m.hidden[name] = !m.hidden[name]
	state := "shown"
	if m.hidden[name] {
		state = "hidden"
	}
	m.hovering = false
	m.status = fmt.Sprintf("%s: %s", name, state)
}

// toggleAll hides every series unless all are hidden already.
func (m *Model) toggleAll() {
	all := true
	for _, s := range m.chart.Series {
		if !m.hidden[s.Name] {
			all = false
			break
		}
	}
	for _, s := range m.chart.Series {
		m.hidden[s.Name] = !all
	}
	m.hovering = false
	if all {
		m.status = "all series shown"
	} else {
		m.status = "all series hidden"
	}
}

func (m *Model) inspect() {
	name, p, ok := m.inspectNearest()
	if !ok {
		m.inspectPopup = "no node nearby"
		m.status = m.inspectPopup
		return
	}
	src := filepath.Base(m.selPath)
	if m.selPath == "" {
		src = "<pasted>"
	}
	meta := []string{
		fmt.Sprintf("node: %s", cluster.NewNode(p.X, p.Y, name)),
		fmt.Sprintf("file: %s", src),
		fmt.Sprintf("clusters: %d  nodes: %d", len(m.reg.Keys()), m.reg.Len()),
		fmt.Sprintf("max: x=%s y=%s", chart.Label(m.reg.MaxX()), chart.Label(m.reg.MaxY())),
	}
	m.inspectPopup = strings.Join(meta, "\n")
	m.status = "inspect popup"
}

// hover tracks the mouse over the data area, recording its data coordinates
// and the nearest visible node.
func (m *Model) hover(x, y int) {
	lo := m.layout()
	f := m.frame(lo.plotW, lo.plotH)
	vp := f.vp
	cx := x - lo.plotX - f.gutter - 1
	cy := y - lo.plotY - legendRows
	if m.showTable || m.pasteMode || !vp.valid() || cx < 0 || cy < 0 || cx >= vp.w || cy >= vp.h {
		m.hovering, m.hoverHasXY = false, false
		return
	}
	m.hoverHasXY = true
	m.hoverX, m.hoverY = vp.fromCell(cx, cy)
	i, _, pmx, pmy, ok := m.nearest(vp, cx*2, cy*4)
	m.hovering = ok
	m.hoverSeries = -1
	if ok {
		m.hoverSeries = i
		m.hoverMicX, m.hoverMicY = pmx, pmy
	}
}
