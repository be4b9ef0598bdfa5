package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
)

// layout is the screen geometry shared by View and the mouse handler.
type layout struct {
	contentW, contentH int
	sidebarW           int
	plotX, plotY       int
	plotW, plotH       int
}

func (m Model) layout() layout {
	lo := layout{
		contentW: max(10, m.width),
		contentH: max(4, m.height-headerHeight-footerHeight),
		plotY:    headerHeight,
	}
	if m.showSidebar {
		lo.sidebarW = sidebarWidth
		lo.plotX = sidebarWidth + 1
	}
	lo.plotW = max(10, lo.contentW-lo.sidebarW-1)
	lo.plotH = lo.contentH
	return lo
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	lo := m.layout()
	if m.alert != nil {
		return lipgloss.Place(lo.contentW, m.height, lipgloss.Center, lipgloss.Center, m.alert.view())
	}

	header := titleStyle.Render(" clusterview ─ " + m.opts.Title + " ")
	header = lipgloss.NewStyle().Width(lo.contentW).Render(header)

	var sidebar string
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, lo.contentH-2)
		sidebar = lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())
	}

	var plotView string
	switch {
	case m.showTable:
		w := min(lo.plotW, max(32, m.tableWidth()))
		m.tbl.SetWidth(w - 4)
		m.tbl.SetHeight(min(lo.plotH-2, 20))
		box := boxStyle.Width(w).Render(m.tbl.View())
		plotView = lipgloss.Place(lo.plotW, lo.plotH, lipgloss.Center, lipgloss.Center, box)
	case m.pasteMode:
		m.ta.SetWidth(lo.plotW)
		m.ta.SetHeight(min(lo.plotH, 12))
		plotView = lipgloss.NewStyle().Width(lo.plotW).Height(lo.plotH).Render(m.ta.View())
	case m.inspectPopup != "":
		box := boxStyle.MaxWidth(max(20, min(48, lo.contentW/2))).Render(m.inspectPopup)
		plotView = lipgloss.Place(lo.plotW, lo.plotH, lipgloss.Left, lipgloss.Center, box)
	default:
		plotView = lipgloss.NewStyle().Width(lo.plotW).Height(lo.plotH).Render(m.renderPlot(lo.plotW, lo.plotH))
	}

	body := plotView
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", plotView)
	}

	status := dimStyle.Render(" " + m.status + " ")
	coords := ""
	if m.hoverHasXY {
		coords = fmt.Sprintf("x=%.2f y=%.2f", m.hoverX, m.hoverY)
		if m.hovering && m.hoverSeries >= 0 && m.hoverSeries < len(m.chart.Series) {
			coords += "  near " + m.chart.Series[m.hoverSeries].Name
		}
		coords = dimStyle.Render("  " + coords + "  ")
	}
	left := lipgloss.JoinVertical(lipgloss.Left, status, m.renderHelp())
	spacerW := max(0, lo.contentW-lipgloss.Width(left)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Top, coords)
	footer := lipgloss.NewStyle().Width(lo.contentW).Render(lipgloss.JoinHorizontal(lipgloss.Top, left, right))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(lo.contentW).Height(m.height).Render(ui)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"↑↓←→ pan",
		"+/- zoom",
		"1-9 series",
		"l all",
		"Tab files",
		"t table",
		"p paste",
		"i inspect",
		"h help",
		"q quit",
	}
	return dimStyle.Render(" " + strings.Join(keys, "  "))
}
