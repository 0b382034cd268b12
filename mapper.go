package axischart

// PixelX maps a data value on the horizontal axis to a pixel offset
// within a viewport of the given width. Values below r.Min map to
// negative offsets and values above r.Max map beyond width; callers
// that want containment clip at the drawing layer.
//
// When the range is degenerate (Max == Min) every value maps to the
// left edge.
func PixelX(value float64, r AxisRange, width float32) float32 {
	if r.Max == r.Min {
		return 0
	}
	return float32((value-r.Min)/(r.Max-r.Min)) * width
}

// PixelY maps a data value on the vertical axis to a pixel offset
// within a viewport of the given height. The mapping is flipped:
// r.Min lands at the bottom of the viewport and r.Max at the top.
//
// When the range is degenerate (Max == Min) every value maps to the
// bottom edge.
func PixelY(value float64, r AxisRange, height float32) float32 {
	if r.Max == r.Min {
		return height
	}
	return height - float32((value-r.Min)/(r.Max-r.Min))*height
}

// PixelPoint maps a data point through both axes of a chart state into
// viewport pixel coordinates.
func PixelPoint(p Point, x, y AxisRange, vp Viewport) (px, py float32) {
	return PixelX(p.X, x, vp.Width), PixelY(p.Y, y, vp.Height)
}
