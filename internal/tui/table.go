package tui

import (
	"strconv"

	table "github.com/charmbracelet/bubbles/table"
)

// refreshTable lists every node of the current registry, grouped by cluster
// in key order.
func (m *Model) refreshTable() {
	cols := []table.Column{
		{Title: "#", Width: 5},
		{Title: "Cluster", Width: 14},
		{Title: "X", Width: 10},
		{Title: "Y", Width: 10},
	}
	rows := make([]table.Row, 0, m.reg.Len())
	for _, k := range m.reg.Keys() {
		for _, n := range m.reg.Get(k) {
			rows = append(rows, table.Row{
				strconv.Itoa(len(rows) + 1),
				k,
				strconv.FormatFloat(n.X(), 'f', -1, 64),
				strconv.FormatFloat(n.Y(), 'f', -1, 64),
			})
		}
	}
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
	m.tbl.GotoTop()
}

func (m Model) tableWidth() int {
	w := 0
	for _, c := range m.tbl.Columns() {
		w += c.Width + 2
	}
	return w
}
