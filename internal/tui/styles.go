package tui

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	warnFg    = lipgloss.Color("#F59E0B")
	borderCol = lipgloss.Color("#243141")

	appStyle   = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	alertStyle = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(warnFg).Padding(1, 2)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
	axisStyle  = lipgloss.NewStyle().Foreground(borderCol)
	hoverStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500"))
)

// seriesColors cycles when there are more clusters than colours.
var seriesColors = []lipgloss.Color{
	"#60A5FA",
	"#F87171",
	"#34D399",
	"#FBBF24",
	"#A78BFA",
	"#F472B6",
	"#22D3EE",
	"#A3E635",
}

func seriesStyle(i int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(seriesColors[i%len(seriesColors)])
}
