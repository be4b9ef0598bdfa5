package tui

import (
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"clusterview/internal/chart"
	"clusterview/internal/cluster"
)

// Options configures the viewer.
type Options struct {
	Title  string
	Chart  chart.Options
	Watch  bool
	Logger *zap.Logger
}

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	zoom    float64
	offsetX int
	offsetY int

	status string

	// File explorer
	cwd     string
	l       list.Model
	selPath string

	// Data
	reg    *cluster.Registry
	chart  chart.Chart
	hidden map[string]bool

	// plot panel size, kept in step with the window
	plotW int
	plotH int

	// paste mode
	pasteMode bool
	ta        textarea.Model

	inspectPopup string

	// startup failure; any key quits
	alert *alert

	// hover state
	hovering    bool
	hoverMicX   int
	hoverMicY   int
	hoverHasXY  bool
	hoverX      float64
	hoverY      float64
	hoverSeries int

	// node table
	showTable bool
	tbl       table.Model

	watcher   *fsnotify.Watcher
	watchPath string

	opts   Options
	logger *zap.Logger
}

func New(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Chart.Tick <= 0 {
		opts.Chart = chart.DefaultOptions()
	}
	if opts.Title == "" {
		opts.Title = "clusterview"
	}
	m := Model{
		helpVisible: true,
		zoom:        1.0,
		status:      "clusterview ready",
		hidden:      map[string]bool{},
		hoverSeries: -1,
		opts:        opts,
		logger:      opts.Logger,
	}
	m.cwd, _ = os.Getwd()
	m.reg = cluster.NewRegistry()
	m.chart = chart.Build(m.reg, opts.Chart)
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Cluster files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste cluster lines here (x y cluster). ctrl+s to render; esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithPath loads path at launch. A missing or corrupt file turns into an
// alert that ends the program on the next key press.
func NewWithPath(path string, opts Options) Model {
	m := New(opts)
	if err := m.loadPath(path); err != nil {
		m.alert = newAlert(err, path)
		return m
	}
	if opts.Watch {
		m.startWatch(path)
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if m.watcher != nil {
		return waitForChange(m.watcher)
	}
	return nil
}
