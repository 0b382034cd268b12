package axischart

import (
	"gioui.org/f32"

	"github.com/chewxy/math32"
)

// PathVerb identifies one drawing operation within a Path.
type PathVerb uint8

const (
	VerbMove PathVerb = iota
	VerbLine
	VerbCube
)

// PathOp is a single path operation in viewport pixel space. CP1 and
// CP2 are only meaningful for VerbCube.
type PathOp struct {
	Verb     PathVerb
	CP1, CP2 f32.Point
	End      f32.Point
}

// Path is a replayable sequence of vector path operations in pixel
// space. It carries no styling; a Canvas decides how to rasterize it.
// The zero value is an empty path ready for use.
type Path struct {
	Ops []PathOp
}

// Reset empties the path while retaining its backing storage, so a
// path can be reused across frames without reallocating.
func (p *Path) Reset() {
	p.Ops = p.Ops[:0]
}

// MoveTo starts a new contour at pt.
func (p *Path) MoveTo(pt f32.Point) {
	p.Ops = append(p.Ops, PathOp{Verb: VerbMove, End: pt})
}

// LineTo appends a straight segment ending at pt.
func (p *Path) LineTo(pt f32.Point) {
	p.Ops = append(p.Ops, PathOp{Verb: VerbLine, End: pt})
}

// CubeTo appends a cubic Bezier segment with control points cp1 and
// cp2, ending at end.
func (p *Path) CubeTo(cp1, cp2, end f32.Point) {
	p.Ops = append(p.Ops, PathOp{Verb: VerbCube, CP1: cp1, CP2: cp2, End: end})
}

// Translated returns a copy of the path with every coordinate offset
// by d.
func (p *Path) Translated(d f32.Point) Path {
	out := Path{Ops: make([]PathOp, len(p.Ops))}
	for i, op := range p.Ops {
		op.CP1 = op.CP1.Add(d)
		op.CP2 = op.CP2.Add(d)
		op.End = op.End.Add(d)
		out.Ops[i] = op
	}
	return out
}

// CurveStyle configures how AppendLinePath connects consecutive
// points.
type CurveStyle struct {
	// Curved enables cubic smoothing. When false every segment is a
	// straight line expressed as a degenerate cubic whose control
	// points sit on its endpoints.
	Curved bool
	// Smoothness scales the tangent estimated at each interior point.
	// It is ignored unless Curved is set.
	Smoothness float32
	// PreventOvershoot suppresses curve bulges past sharp local
	// extrema: whenever the delta between the points surrounding an
	// anchor stays within Threshold on one axis, the tangent loses
	// its component along that axis.
	PreventOvershoot bool
	Threshold        float32
}

// AppendLinePath appends a (possibly curved) series path through pts
// onto path. When extend is false the first point begins a new
// contour; when true it connects to the existing contour with a
// straight segment, which lets a caller continue a path to close a
// fill region.
//
// A single point yields only the initial move or line, never a stroked
// segment. An empty slice is a no-op.
func AppendLinePath(path *Path, pts []f32.Point, style CurveStyle, extend bool) {
	if len(pts) == 0 {
		return
	}
	if extend {
		path.LineTo(pts[0])
	} else {
		path.MoveTo(pts[0])
	}
	var smoothness float32
	if style.Curved {
		smoothness = style.Smoothness
	}
	// temp carries the previous segment's outgoing tangent offset so
	// adjacent cubics share a tangent at their joint.
	var temp f32.Point
	for i := 1; i < len(pts); i++ {
		current := pts[i]
		previous := pts[i-1]
		next := pts[min(i+1, len(pts)-1)]

		cp1 := previous.Add(temp)
		temp = next.Sub(previous).Div(2).Mul(smoothness)

		if style.PreventOvershoot {
			if next.Y-current.Y <= style.Threshold ||
				current.Y-previous.Y <= style.Threshold {
				temp.Y = 0
			}
			if next.X-current.X <= style.Threshold ||
				current.X-previous.X <= style.Threshold {
				temp.X = 0
			}
		}

		cp2 := current.Sub(temp)
		path.CubeTo(cp1, cp2, current)
	}
}

// AppendStepPath appends a step-shaped series path through pts onto
// path. stepDirection in [0, 1] places the riser between each pair of
// points: 0 puts the corner at the far point, 1 at the near point,
// and fractions blend the corner position linearly between the two.
func AppendStepPath(path *Path, pts []f32.Point, stepDirection float32, extend bool) {
	if len(pts) == 0 {
		return
	}
	if extend {
		path.LineTo(pts[0])
	} else {
		path.MoveTo(pts[0])
	}
	for i := 0; i < len(pts)-1; i++ {
		current := pts[i]
		next := pts[i+1]
		if current.Y == next.Y {
			path.LineTo(next)
			continue
		}
		deltaX := next.X - current.X
		cornerX := current.X + deltaX - deltaX*stepDirection
		path.LineTo(f32.Pt(cornerX, current.Y))
		path.LineTo(f32.Pt(cornerX, next.Y))
		path.LineTo(next)
	}
}

// pathBounds returns the axis-aligned bounding box of every anchor
// and control point in the path. It reports false for an empty path.
func pathBounds(p *Path) (min, max f32.Point, ok bool) {
	if len(p.Ops) == 0 {
		return min, max, false
	}
	min = p.Ops[0].End
	max = min
	grow := func(pt f32.Point) {
		min.X = math32.Min(min.X, pt.X)
		min.Y = math32.Min(min.Y, pt.Y)
		max.X = math32.Max(max.X, pt.X)
		max.Y = math32.Max(max.Y, pt.Y)
	}
	for _, op := range p.Ops {
		if op.Verb == VerbCube {
			grow(op.CP1)
			grow(op.CP2)
		}
		grow(op.End)
	}
	return min, max, true
}
