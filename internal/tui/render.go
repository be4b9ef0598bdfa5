package tui

import (
	"math"
	"strings"

	"clusterview/internal/chart"
)

// viewport maps chart coordinates onto a w x h cell data area, applying zoom
// around the centre and a pan offset in cells.
type viewport struct {
	x, y       chart.Axis
	w, h       int
	zoom       float64
	offX, offY int
}

func (v viewport) microX(x float64) int {
	nx := (x - v.x.Min) / v.x.Span()
	zx := 0.5 + (nx-0.5)*v.zoom
	return int(math.Round(zx*float64(v.w*2-1))) + v.offX*2
}

func (v viewport) microY(y float64) int {
	ny := (y - v.y.Min) / v.y.Span()
	zy := 0.5 + (ny-0.5)*v.zoom
	return int(math.Round((1.0-zy)*float64(v.h*4-1))) + v.offY*4
}

// toMicro maps a data point into the 2x4 microgrid used for braille.
func (v viewport) toMicro(x, y float64) (int, int) {
	return v.microX(x), v.microY(y)
}

// fromMicroX and fromMicroY invert microX and microY.
func (v viewport) fromMicroX(mx float64) float64 {
	zx := (mx - float64(v.offX*2)) / float64(v.w*2-1)
	nx := 0.5 + (zx-0.5)/v.zoom
	return v.x.Min + nx*v.x.Span()
}

func (v viewport) fromMicroY(my float64) float64 {
	zy := 1.0 - (my-float64(v.offY*4))/float64(v.h*4-1)
	ny := 0.5 + (zy-0.5)/v.zoom
	return v.y.Min + ny*v.y.Span()
}

// fromCell returns the data coordinates at the centre of a cell.
func (v viewport) fromCell(cx, cy int) (float64, float64) {
	return v.fromMicroX(float64(cx*2) + 0.5), v.fromMicroY(float64(cy*4) + 1.5)
}

// visible returns the data range covered by the data area.
func (v viewport) visible() (x0, x1, y0, y1 float64) {
	return v.fromMicroX(0), v.fromMicroX(float64(v.w*2 - 1)),
		v.fromMicroY(float64(v.h*4 - 1)), v.fromMicroY(0)
}

func (v viewport) valid() bool {
	return v.w > 1 && v.h > 1 && v.x.Span() > 0 && v.y.Span() > 0 && v.zoom > 0
}

type tickLabel struct {
	pos   int // cell row or column inside the data area
	label string
}

// frame is the geometry of one plot panel: legend row, y-label gutter, data
// area and the two x-axis rows underneath.
type frame struct {
	gutter int
	vp     viewport
	yTicks []tickLabel
	xTicks []tickLabel
}

const (
	legendRows = 1
	axisRows   = 2
)

func (m Model) frame(w, h int) frame {
	dataH := max(2, h-legendRows-axisRows)
	vp := viewport{x: m.chart.X, y: m.chart.Y, h: dataH, w: 2, zoom: m.zoom, offX: m.offsetX, offY: m.offsetY}

	// y labels only depend on the height, which fixes the gutter width.
	var yTicks []tickLabel
	gutter := 1
	if vp.valid() {
		_, _, y0, y1 := vp.visible()
		last := -2
		for _, t := range m.chart.Y.TicksIn(y0, y1, max(1, dataH/2)) {
			row := floorDiv(vp.microY(t), 4)
			if row < 0 || row >= dataH {
				continue
			}
			if len(yTicks) > 0 && abs(row-last) < 2 {
				continue
			}
			yTicks = append(yTicks, tickLabel{pos: row, label: chart.Label(t)})
			gutter = max(gutter, len(yTicks[len(yTicks)-1].label))
			last = row
		}
	}
	vp.w = max(2, w-gutter-1)

	var xTicks []tickLabel
	if vp.valid() {
		x0, x1, _, _ := vp.visible()
		end := -1
		for _, t := range m.chart.X.TicksIn(x0, x1, max(1, vp.w/8)) {
			col := floorDiv(vp.microX(t), 2)
			if col < 0 || col >= vp.w {
				continue
			}
			label := chart.Label(t)
			start := min(col, vp.w-len(label))
			if start < 0 || start <= end {
				continue
			}
			xTicks = append(xTicks, tickLabel{pos: col, label: label})
			end = start + len(label)
		}
	}
	return frame{gutter: gutter, vp: vp, yTicks: yTicks, xTicks: xTicks}
}

// renderPlot draws the legend, the braille scatter and both axes into a
// w x h block.
func (m Model) renderPlot(w, h int) string {
	f := m.frame(w, h)
	vp := f.vp
	br := newBrailleBuf(vp.w, vp.h)
	if vp.valid() {
		for i, s := range m.chart.Series {
			if m.hidden[s.Name] {
				continue
			}
			for _, p := range s.Points {
				mx, my := vp.toMicro(p.X, p.Y)
				br.setPixel(mx, my, i)
			}
		}
	}

	out := make([]string, 0, h)
	out = append(out, m.renderLegend(w))

	rowLabels := make(map[int]string, len(f.yTicks))
	for _, t := range f.yTicks {
		rowLabels[t.pos] = t.label
	}
	hoverCX, hoverCY := -1, -1
	if m.hovering {
		hoverCX, hoverCY = floorDiv(m.hoverMicX, 2), floorDiv(m.hoverMicY, 4)
	}
	for cy := 0; cy < vp.h; cy++ {
		var b strings.Builder
		label, ok := rowLabels[cy]
		b.WriteString(dimStyle.Render(padLeft(label, f.gutter)))
		if ok {
			b.WriteString(axisStyle.Render("┤"))
		} else {
			b.WriteString(axisStyle.Render("│"))
		}
		b.WriteString(m.renderRow(br, cy, hoverCX, hoverCY))
		out = append(out, b.String())
	}

	// x axis line with tick marks, then the labels
	colTicks := make(map[int]bool, len(f.xTicks))
	for _, t := range f.xTicks {
		colTicks[t.pos] = true
	}
	axis := make([]rune, vp.w)
	for cx := range axis {
		axis[cx] = '─'
		if colTicks[cx] {
			axis[cx] = '┬'
		}
	}
	out = append(out, strings.Repeat(" ", f.gutter)+axisStyle.Render("└"+string(axis)))

	labels := []rune(strings.Repeat(" ", vp.w))
	for _, t := range f.xTicks {
		copy(labels[min(t.pos, vp.w-len(t.label)):], []rune(t.label))
	}
	out = append(out, strings.Repeat(" ", f.gutter+1)+dimStyle.Render(string(labels)))
	return strings.Join(out, "\n")
}

// renderRow colours one data row, batching runs of cells owned by the same series.
func (m Model) renderRow(br *brailleBuf, cy, hoverCX, hoverCY int) string {
	var b strings.Builder
	var run strings.Builder
	owner := -1
	flush := func() {
		if run.Len() == 0 {
			return
		}
		if owner >= 0 {
			b.WriteString(seriesStyle(owner).Render(run.String()))
		} else {
			b.WriteString(run.String())
		}
		run.Reset()
	}
	for cx := 0; cx < br.w; cx++ {
		if cx == hoverCX && cy == hoverCY {
			flush()
			b.WriteString(hoverStyle.Render("◯"))
			continue
		}
		r, s := br.cell(cx, cy)
		if s != owner {
			flush()
			owner = s
		}
		run.WriteRune(r)
	}
	flush()
	return b.String()
}

// renderLegend lists the series with their key, colour and node count.
func (m Model) renderLegend(w int) string {
	parts := make([]string, 0, len(m.chart.Series)+1)
	if m.chart.X.Label != "" || m.chart.Y.Label != "" {
		parts = append(parts, dimStyle.Render("→ "+m.chart.X.Label+"  ↑ "+m.chart.Y.Label))
	}
	for i, s := range m.chart.Series {
		key := " "
		if i < 9 {
			key = string(rune('1' + i))
		}
		entry := key + " ⣿ " + s.Name + " (" + itoa(len(s.Points)) + ")"
		if m.hidden[s.Name] {
			parts = append(parts, dimStyle.Strikethrough(true).Render(entry))
		} else {
			parts = append(parts, seriesStyle(i).Render(entry))
		}
	}
	if len(m.chart.Series) == 0 {
		parts = append(parts, dimStyle.Render("no clusters loaded"))
	}
	return lipglossTruncate(strings.Join(parts, "   "), w)
}

// nearest returns the visible point closest to micro position (mx, my).
func (m Model) nearest(vp viewport, mx, my int) (series int, p chart.Point, pmx, pmy int, ok bool) {
	best := math.MaxInt
	for i, s := range m.chart.Series {
		if m.hidden[s.Name] {
			continue
		}
		for _, pt := range s.Points {
			px, py := vp.toMicro(pt.X, pt.Y)
			dx, dy := px-mx, py-my
			if d := dx*dx + dy*dy; d < best {
				best = d
				series, p, pmx, pmy, ok = i, pt, px, py, true
			}
		}
	}
	return series, p, pmx, pmy, ok
}

// inspectNearest finds the node closest to the centre of the data area.
func (m Model) inspectNearest() (string, chart.Point, bool) {
	w, h := m.plotW, m.plotH
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}
	vp := m.frame(w, h).vp
	if !vp.valid() {
		return "", chart.Point{}, false
	}
	i, p, _, _, ok := m.nearest(vp, vp.w, vp.h*2)
	if !ok {
		return "", chart.Point{}, false
	}
	return m.chart.Series[i].Name, p, true
}
