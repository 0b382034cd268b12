package axischart

// AxisRange is the [Min, Max] data-space span mapped onto one screen
// dimension. Baseline anchors where interval-spaced grid positions
// start counting from; it need not equal Min.
//
// Max is expected to be at least Min. A range with Max == Min is not
// an error: every value in it maps to a single fixed edge of the
// viewport.
type AxisRange struct {
	Min, Max float64
	Baseline float64
}

// Span returns Max - Min.
func (r AxisRange) Span() float64 {
	return r.Max - r.Min
}

// Lerp interpolates every bound of the range toward target at
// progress t.
func (r AxisRange) Lerp(target AxisRange, t float64) AxisRange {
	return AxisRange{
		Min:      lerp(r.Min, target.Min, t),
		Max:      lerp(r.Max, target.Max, t),
		Baseline: lerp(r.Baseline, target.Baseline, t),
	}
}

// Viewport is the pixel rectangle a chart is mapped into. The pixel
// origin is top-left, opposite the data-space origin, so Y mapping
// flips.
type Viewport struct {
	Width, Height float32
}
