package tui

import "clusterview/internal/cluster"

// alert is shown instead of the chart when the start-up file cannot be used.
type alert struct {
	header string
	detail string
}

func newAlert(err error, path string) *alert {
	h, d := cluster.Guidance(err, path)
	return &alert{header: h, detail: d}
}

func (a *alert) view() string {
	return alertStyle.Render(titleStyle.Render(a.header) + "\n\n" + a.detail + "\n\n" + dimStyle.Render("press any key to quit"))
}
