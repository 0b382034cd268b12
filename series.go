package axischart

import "image/color"

// StrokeCap selects the shape of stroke endpoints.
type StrokeCap uint8

const (
	CapButt StrokeCap = iota
	CapRound
	CapSquare
)

// StrokeJoin selects the shape of stroke corners.
type StrokeJoin uint8

const (
	JoinRound StrokeJoin = iota
	JoinBevel
)

// Shadow describes a soft duplicate of a series stroke drawn behind
// it. A zero-alpha color disables the shadow.
type Shadow struct {
	Color color.NRGBA
	// OffsetX and OffsetY displace the shadow in pixels.
	OffsetX, OffsetY float32
	Blur             float32
}

// Lerp interpolates the shadow toward target at progress t.
func (s Shadow) Lerp(target Shadow, t float64) Shadow {
	return Shadow{
		Color:   LerpColor(s.Color, target.Color, t),
		OffsetX: lerp(s.OffsetX, target.OffsetX, t),
		OffsetY: lerp(s.OffsetY, target.OffsetY, t),
		Blur:    lerp(s.Blur, target.Blur, t),
	}
}

const (
	defaultSeriesWidth        = 2
	defaultSmoothness         = 0.35
	defaultOvershootThreshold = 10
)

// Series represents one data set in a visualization, with the styling
// used to stroke it. Points may contain break markers (SeriesBreak)
// splitting the series into disconnected strokes.
//
// Replace the point list through SetPoints rather than mutating the
// slice in place: the extrema cache is only recomputed when the list
// is replaced.
type Series struct {
	points []Point

	Color color.NRGBA
	Width float32

	Curved     bool
	Smoothness float32
	// PreventOvershoot stops smoothed curves from bulging past sharp
	// local extrema; OvershootThreshold is the pixel delta under
	// which a tangent component is discarded.
	PreventOvershoot   bool
	OvershootThreshold float32

	Stepped bool
	// StepDirection places the riser of each step; see AppendStepPath.
	StepDirection float32

	Cap    StrokeCap
	Join   StrokeJoin
	Dashes []float32
	Shadow Shadow

	extrema seriesExtrema
}

// NewSeries returns a series over the given points with the default
// stroke styling.
func NewSeries(pts []Point, col color.NRGBA) Series {
	s := Series{
		Color:              col,
		Width:              defaultSeriesWidth,
		Smoothness:         defaultSmoothness,
		OvershootThreshold: defaultOvershootThreshold,
		StepDirection:      0.5,
	}
	s.SetPoints(pts)
	return s
}

// Points returns the series' point list. The returned slice must not
// be mutated; use SetPoints to replace it.
func (s *Series) Points() []Point {
	return s.points
}

// SetPoints replaces the series' point list and recomputes the cached
// extrema.
func (s *Series) SetPoints(pts []Point) {
	s.points = pts
	s.extrema = scanExtrema(pts)
}

// Leftmost returns the non-break point with the smallest X. It
// reports false when the series holds no real points.
func (s *Series) Leftmost() (Point, bool) { return s.extrema.left, s.extrema.ok }

// Rightmost returns the non-break point with the largest X.
func (s *Series) Rightmost() (Point, bool) { return s.extrema.right, s.extrema.ok }

// Topmost returns the non-break point with the largest Y.
func (s *Series) Topmost() (Point, bool) { return s.extrema.top, s.extrema.ok }

// Bottommost returns the non-break point with the smallest Y.
func (s *Series) Bottommost() (Point, bool) { return s.extrema.bottom, s.extrema.ok }

// Segments splits the series on break markers into maximal runs of
// real points. Runs of consecutive markers and markers at either end
// produce no empty segments.
func (s *Series) Segments() [][]Point {
	var out [][]Point
	start := -1
	for i, p := range s.points {
		if p.IsBreak() {
			if start >= 0 {
				out = append(out, s.points[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		out = append(out, s.points[start:])
	}
	return out
}

// Lerp interpolates the series toward target at progress t. Point
// lists of differing lengths are not reconciled: the target's points
// are taken outright, as are all non-numeric styling fields.
func (s Series) Lerp(target Series, t float64) Series {
	out := target
	if len(s.points) == len(target.points) {
		pts := make([]Point, len(target.points))
		for i := range pts {
			pts[i] = s.points[i].Lerp(target.points[i], t)
		}
		out.SetPoints(pts)
	}
	out.Color = LerpColor(s.Color, target.Color, t)
	out.Width = lerp(s.Width, target.Width, t)
	out.Smoothness = lerp(s.Smoothness, target.Smoothness, t)
	out.OvershootThreshold = lerp(s.OvershootThreshold, target.OvershootThreshold, t)
	out.StepDirection = lerp(s.StepDirection, target.StepDirection, t)
	out.Dashes = lerpFloats(s.Dashes, target.Dashes, t)
	out.Shadow = s.Shadow.Lerp(target.Shadow, t)
	return out
}

type seriesExtrema struct {
	left, right, top, bottom Point
	ok                       bool
}

// scanExtrema finds the outermost real points in pts. Break markers
// are skipped; a list with no real points yields ok == false rather
// than a sentinel value.
func scanExtrema(pts []Point) seriesExtrema {
	var e seriesExtrema
	for _, p := range pts {
		if p.IsBreak() {
			continue
		}
		if !e.ok {
			e = seriesExtrema{left: p, right: p, top: p, bottom: p, ok: true}
			continue
		}
		if p.X < e.left.X {
			e.left = p
		}
		if p.X > e.right.X {
			e.right = p
		}
		if p.Y > e.top.Y {
			e.top = p
		}
		if p.Y < e.bottom.Y {
			e.bottom = p
		}
	}
	return e
}
