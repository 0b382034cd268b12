package axischart

// Point is a single data-space coordinate in a series. The data-space
// origin is at the bottom-left, so larger Y values map higher on screen.
//
// A Point constructed with SeriesBreak marks a gap in a series: no
// segment is drawn through it, and the points on either side of it
// belong to independent strokes.
type Point struct {
	X, Y float64

	gap bool
}

// Pt returns the data point at (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// SeriesBreak returns the marker point that splits a series into
// disconnected strokes.
func SeriesBreak() Point {
	return Point{gap: true}
}

// IsBreak reports whether p is a series break marker rather than a
// real data point.
func (p Point) IsBreak() bool {
	return p.gap
}

// Lerp interpolates between p and target at progress t. A break marker
// never interpolates against a real point: whichever side holds real
// data wins unchanged, so appearing and disappearing strokes snap at
// the gap instead of sweeping through meaningless coordinates.
func (p Point) Lerp(target Point, t float64) Point {
	if p.gap {
		return target
	}
	if target.gap {
		return p
	}
	return Point{
		X: lerp(p.X, target.X, t),
		Y: lerp(p.Y, target.Y, t),
	}
}
