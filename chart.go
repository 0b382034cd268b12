// Package axischart renders Cartesian line charts: it maps data-space
// coordinates onto viewport pixels, lays out grid lines at data-driven
// intervals, builds vector paths for data series, and interpolates
// whole chart states so transitions between them can be animated.
//
// The package rasterizes nothing itself. Geometry is handed to a
// Canvas; GioCanvas adapts a Gio operation list, and any other
// rasterizer can be plugged in behind the same interface.
package axischart

import "image/color"

// ChartState is a complete description of one chart: axis ranges,
// grid, series, annotations, and background. States are value
// snapshots; an animated transition holds two of them and interpolates
// with Lerp each frame. Nothing mutates a state after construction, so
// a state may be shared freely between frames.
type ChartState struct {
	XAxis, YAxis AxisRange
	Grid         GridSpec
	Series       []Series
	Horizontal   []HorizontalAnnotation
	Vertical     []VerticalAnnotation

	Background color.NRGBA
	// Clip constrains drawing to the viewport rectangle. Applied by
	// the widget layer, since clipping belongs to the rasterizer.
	Clip bool
}

// Lerp produces the intermediate chart state at progress t between s
// and target. Every numeric field interpolates linearly, colors
// channel-wise, and numeric lists element-wise; flags and callbacks
// snap to the target's values at every t.
//
// Series and annotation lists interpolate pairwise by position. Lists
// of differing lengths are not reconciled: the target's list is taken
// outright. Shape compatibility is the animation driver's job, not
// this engine's.
func (s ChartState) Lerp(target ChartState, t float64) ChartState {
	out := target
	out.XAxis = s.XAxis.Lerp(target.XAxis, t)
	out.YAxis = s.YAxis.Lerp(target.YAxis, t)
	out.Grid = s.Grid.Lerp(target.Grid, t)
	out.Background = LerpColor(s.Background, target.Background, t)
	if len(s.Series) == len(target.Series) {
		out.Series = make([]Series, len(target.Series))
		for i := range out.Series {
			out.Series[i] = s.Series[i].Lerp(target.Series[i], t)
		}
	}
	if len(s.Horizontal) == len(target.Horizontal) {
		out.Horizontal = make([]HorizontalAnnotation, len(target.Horizontal))
		for i := range out.Horizontal {
			out.Horizontal[i] = s.Horizontal[i].Lerp(target.Horizontal[i], t)
		}
	}
	if len(s.Vertical) == len(target.Vertical) {
		out.Vertical = make([]VerticalAnnotation, len(target.Vertical))
		for i := range out.Vertical {
			out.Vertical[i] = s.Vertical[i].Lerp(target.Vertical[i], t)
		}
	}
	return out
}
