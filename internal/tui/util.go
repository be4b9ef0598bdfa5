package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func padLeft(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return strings.Repeat(" ", n-len(s)) + s
}

// floorDiv divides rounding toward negative infinity, so off-screen micro
// coordinates never land in cell 0.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func itoa(n int) string { return strconv.Itoa(n) }

// lipglossTruncate cuts a styled string to w terminal cells.
func lipglossTruncate(s string, w int) string {
	return lipgloss.NewStyle().MaxWidth(w).Render(s)
}
