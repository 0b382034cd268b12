package axischart

import (
	"image/color"

	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/x/stroke"
)

// GioCanvas is a Canvas that records drawing into a Gio operation
// list. It only records; rasterization happens when the host window
// renders the frame.
type GioCanvas struct {
	ops *op.Ops
	// segs is scratch storage for stroke conversion, reused across
	// calls within a frame.
	segs []stroke.Segment
}

var _ Canvas = (*GioCanvas)(nil)

// NewGioCanvas returns a canvas recording into ops.
func NewGioCanvas(ops *op.Ops) *GioCanvas {
	return &GioCanvas{ops: ops}
}

// FillRect fills r with c.
func (g *GioCanvas) FillRect(r Rect, c color.NRGBA) {
	if c.A == 0 || r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y {
		return
	}
	var p clip.Path
	p.Begin(g.ops)
	p.MoveTo(r.Min)
	p.LineTo(f32.Pt(r.Max.X, r.Min.Y))
	p.LineTo(r.Max)
	p.LineTo(f32.Pt(r.Min.X, r.Max.Y))
	p.Close()
	paint.FillShape(g.ops, c, clip.Outline{Path: p.End()}.Op())
}

// FillPath fills the area enclosed by p with c. Open contours are
// closed with a straight segment back to their start.
func (g *GioCanvas) FillPath(path *Path, c color.NRGBA) {
	if c.A == 0 || len(path.Ops) == 0 {
		return
	}
	var p clip.Path
	p.Begin(g.ops)
	open := false
	for _, o := range path.Ops {
		switch o.Verb {
		case VerbMove:
			if open {
				p.Close()
			}
			p.MoveTo(o.End)
			open = true
		case VerbLine:
			p.LineTo(o.End)
		case VerbCube:
			p.CubeTo(o.CP1, o.CP2, o.End)
		}
	}
	if open {
		p.Close()
	}
	paint.FillShape(g.ops, c, clip.Outline{Path: p.End()}.Op())
}

// StrokePath strokes p with s. Blur has no Gio primitive; the blur
// radius widens the stroke instead.
func (g *GioCanvas) StrokePath(path *Path, s Stroke) {
	if s.Color.A == 0 || s.Width <= 0 || len(path.Ops) == 0 {
		return
	}
	g.segs = g.segs[:0]
	for _, o := range path.Ops {
		switch o.Verb {
		case VerbMove:
			g.segs = append(g.segs, stroke.MoveTo(o.End))
		case VerbLine:
			g.segs = append(g.segs, stroke.LineTo(o.End))
		case VerbCube:
			g.segs = append(g.segs, stroke.CubeTo(o.CP1, o.CP2, o.End))
		}
	}
	st := stroke.Stroke{
		Path:  stroke.Path{Segments: g.segs},
		Width: s.Width + s.Blur,
		Cap:   gioCap(s.Cap),
		Join:  gioJoin(s.Join),
	}
	if len(s.Dashes) > 0 {
		st.Dashes = stroke.Dashes{Dashes: s.Dashes}
	}
	defer st.Op(g.ops).Push(g.ops).Pop()
	paint.Fill(g.ops, s.Color)
}

func gioCap(c StrokeCap) stroke.StrokeCap {
	switch c {
	case CapRound:
		return stroke.RoundCap
	case CapSquare:
		return stroke.SquareCap
	default:
		return stroke.FlatCap
	}
}

func gioJoin(j StrokeJoin) stroke.StrokeJoin {
	switch j {
	case JoinBevel:
		return stroke.BevelJoin
	default:
		return stroke.RoundJoin
	}
}
