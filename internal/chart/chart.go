// Package chart turns a cluster registry into the series and axes a renderer draws.
package chart

import (
	"math"
	"strconv"

	"clusterview/internal/cluster"
)

// Source is the read-only view of a registry that renderers consume.
type Source interface {
	Keys() []string
	Get(name string) []cluster.Node
	MaxX() float64
	MaxY() float64
}

type Point struct {
	X, Y float64
}

// Series holds the points of one cluster.
type Series struct {
	Name   string
	Points []Point
}

// Axis spans [Min, Max] with tick marks every Tick units.
type Axis struct {
	Label string
	Min   float64
	Max   float64
	Tick  float64
}

func (a Axis) Span() float64 { return a.Max - a.Min }

// Step is the tick spacing for [lo, hi] split into at most slots intervals:
// Tick times the smallest 1, 2 or 5 multiple of a power of ten that fits.
func (a Axis) Step(lo, hi float64, slots int) float64 {
	k := (hi - lo) / a.Tick / float64(max(1, slots))
	if !(k > 1) {
		return a.Tick
	}
	if math.IsInf(k, 1) {
		return k
	}
	p := math.Pow10(int(math.Floor(math.Log10(k))))
	for _, m := range []float64{1, 2, 5} {
		if m*p >= k {
			return a.Tick * m * p
		}
	}
	return a.Tick * 10 * p
}

// TicksIn returns at most slots+1 ticks inside both [lo, hi] and the axis,
// spaced by Step. The work is bounded by slots, not by the axis span.
func (a Axis) TicksIn(lo, hi float64, slots int) []float64 {
	if a.Tick <= 0 || slots < 1 {
		return nil
	}
	lo, hi = math.Max(lo, a.Min), math.Min(hi, a.Max)
	if hi < lo {
		return nil
	}
	step := a.Step(lo, hi, slots)
	if math.IsInf(step, 0) || math.IsNaN(step) {
		return nil
	}
	eps := step * 1e-9
	first := math.Max(0, math.Ceil((lo-a.Min-eps)/step))
	out := make([]float64, 0, slots+1)
	for i := first; len(out) <= slots; i++ {
		v := a.Min + i*step
		if v > hi+eps {
			break
		}
		out = append(out, v)
	}
	return out
}

// Label formats a tick value without trailing zeros.
func Label(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

type Options struct {
	// Margin is added to the registry maxima so edge points are not clipped.
	Margin float64
	Tick   float64
	XLabel string
	YLabel string
}

func DefaultOptions() Options {
	return Options{Margin: 1, Tick: 0.5, XLabel: "X Axis", YLabel: "Y Axis"}
}

type Chart struct {
	Series []Series
	X, Y   Axis
}

// Build creates one series per cluster, in the registry's key order.
func Build(src Source, opts Options) Chart {
	c := Chart{
		X: Axis{Label: opts.XLabel, Min: 0, Max: src.MaxX() + opts.Margin, Tick: opts.Tick},
		Y: Axis{Label: opts.YLabel, Min: 0, Max: src.MaxY() + opts.Margin, Tick: opts.Tick},
	}
	for _, name := range src.Keys() {
		nodes := src.Get(name)
		s := Series{Name: name, Points: make([]Point, 0, len(nodes))}
		for _, n := range nodes {
			s.Points = append(s.Points, Point{X: n.X(), Y: n.Y()})
		}
		c.Series = append(c.Series, s)
	}
	return c
}
