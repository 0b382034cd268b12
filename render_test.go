package axischart

import (
	"errors"
	"image/color"
	"testing"

	"gioui.org/f32"
)

type canvasCall struct {
	kind   string
	rect   Rect
	color  color.NRGBA
	stroke Stroke
	ops    []PathOp
}

// recordCanvas captures draw calls for inspection.
type recordCanvas struct {
	calls []canvasCall
}

var _ Canvas = (*recordCanvas)(nil)

func (r *recordCanvas) FillRect(rect Rect, c color.NRGBA) {
	r.calls = append(r.calls, canvasCall{kind: "fillRect", rect: rect, color: c})
}

func (r *recordCanvas) FillPath(p *Path, c color.NRGBA) {
	r.calls = append(r.calls, canvasCall{kind: "fillPath", color: c, ops: append([]PathOp(nil), p.Ops...)})
}

func (r *recordCanvas) StrokePath(p *Path, s Stroke) {
	r.calls = append(r.calls, canvasCall{kind: "strokePath", stroke: s, ops: append([]PathOp(nil), p.Ops...)})
}

func (r *recordCanvas) kinds() []string {
	out := make([]string, len(r.calls))
	for i, c := range r.calls {
		out[i] = c.kind
	}
	return out
}

func TestRenderOrder(t *testing.T) {
	state := ChartState{
		XAxis: AxisRange{Min: 0, Max: 10},
		YAxis: AxisRange{Min: 0, Max: 10},
		Series: []Series{
			NewSeries([]Point{Pt(0, 0), Pt(10, 10)}, color.NRGBA{R: 255, A: 255}),
		},
		Horizontal: []HorizontalAnnotation{{Y1: 1, Y2: 2, Color: color.NRGBA{A: 100}}},
		Background: color.NRGBA{A: 255},
	}
	state.Grid = DefaultGrid()
	var canvas recordCanvas
	var r Renderer
	if err := r.Render(&canvas, &state, Viewport{Width: 100, Height: 100}); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	kinds := canvas.kinds()
	if len(kinds) < 4 {
		t.Fatalf("expected background, annotation, grid, and series draws, got %v", kinds)
	}
	if kinds[0] != "fillRect" {
		t.Errorf("background must draw first, got %v", kinds)
	}
	if kinds[1] != "fillRect" {
		t.Errorf("annotations must draw before the grid, got %v", kinds)
	}
	last := canvas.calls[len(canvas.calls)-1]
	if last.kind != "strokePath" || last.stroke.Color != state.Series[0].Color {
		t.Errorf("the series stroke must draw last, got %+v", last)
	}
}

func TestRenderSplitsSeriesOnBreaks(t *testing.T) {
	s := NewSeries([]Point{
		Pt(0, 0), Pt(2, 2), SeriesBreak(), Pt(5, 5), Pt(7, 7),
	}, color.NRGBA{R: 255, A: 255})
	state := ChartState{
		XAxis:  AxisRange{Min: 0, Max: 10},
		YAxis:  AxisRange{Min: 0, Max: 10},
		Series: []Series{s},
	}
	var canvas recordCanvas
	var r Renderer
	if err := r.Render(&canvas, &state, Viewport{Width: 100, Height: 100}); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	strokes := 0
	for _, c := range canvas.calls {
		if c.kind == "strokePath" {
			strokes++
			if len(c.ops) != 2 {
				t.Errorf("each sub-stroke should hold a move and one segment, got %d ops", len(c.ops))
			}
			if c.ops[0].Verb != VerbMove {
				t.Errorf("sub-strokes must start fresh contours, got verb %d", c.ops[0].Verb)
			}
		}
	}
	if strokes != 2 {
		t.Errorf("a break-separated series must stroke per segment, got %d strokes", strokes)
	}
}

func TestRenderSkipsDegenerateSeries(t *testing.T) {
	state := ChartState{
		XAxis: AxisRange{Min: 0, Max: 10},
		YAxis: AxisRange{Min: 0, Max: 10},
		Series: []Series{
			NewSeries(nil, color.NRGBA{R: 255, A: 255}),
			NewSeries([]Point{Pt(5, 5)}, color.NRGBA{G: 255, A: 255}),
		},
	}
	var canvas recordCanvas
	var r Renderer
	if err := r.Render(&canvas, &state, Viewport{Width: 100, Height: 100}); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	for _, c := range canvas.calls {
		if c.kind == "strokePath" {
			t.Errorf("empty and single-point series must not stroke, got %+v", c)
		}
	}
}

func TestRenderCullsOffscreenSegments(t *testing.T) {
	s := NewSeries([]Point{
		// On screen.
		Pt(1, 1), Pt(2, 2),
		SeriesBreak(),
		// Far past the right edge of the viewport.
		Pt(200, 1), Pt(210, 2),
	}, color.NRGBA{R: 255, A: 255})
	state := ChartState{
		XAxis:  AxisRange{Min: 0, Max: 10},
		YAxis:  AxisRange{Min: 0, Max: 10},
		Series: []Series{s},
	}
	var canvas recordCanvas
	var r Renderer
	if err := r.Render(&canvas, &state, Viewport{Width: 100, Height: 100}); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	strokes := 0
	for _, c := range canvas.calls {
		if c.kind == "strokePath" {
			strokes++
		}
	}
	if strokes != 1 {
		t.Errorf("segments entirely outside the viewport should not stroke, got %d strokes", strokes)
	}
}

func TestRenderZeroWidthSeries(t *testing.T) {
	s := NewSeries([]Point{Pt(0, 0), Pt(10, 10)}, color.NRGBA{R: 255, A: 255})
	s.Width = 0
	state := ChartState{
		XAxis:  AxisRange{Min: 0, Max: 10},
		YAxis:  AxisRange{Min: 0, Max: 10},
		Series: []Series{s},
	}
	var canvas recordCanvas
	var r Renderer
	if err := r.Render(&canvas, &state, Viewport{Width: 100, Height: 100}); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if len(canvas.calls) != 0 {
		t.Errorf("zero-width series must draw nothing, got %v", canvas.kinds())
	}
}

func TestRenderShadowUnderStroke(t *testing.T) {
	s := NewSeries([]Point{Pt(0, 0), Pt(10, 10)}, color.NRGBA{R: 255, A: 255})
	s.Shadow = Shadow{Color: color.NRGBA{A: 120}, OffsetX: 2, OffsetY: 3}
	state := ChartState{
		XAxis:  AxisRange{Min: 0, Max: 10},
		YAxis:  AxisRange{Min: 0, Max: 10},
		Series: []Series{s},
	}
	var canvas recordCanvas
	var r Renderer
	if err := r.Render(&canvas, &state, Viewport{Width: 100, Height: 100}); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if len(canvas.calls) != 2 {
		t.Fatalf("expected shadow then stroke, got %v", canvas.kinds())
	}
	shadow, stroke := canvas.calls[0], canvas.calls[1]
	if shadow.stroke.Color != s.Shadow.Color {
		t.Errorf("first stroke should be the shadow, got %+v", shadow.stroke)
	}
	d := shadow.ops[0].End.Sub(stroke.ops[0].End)
	if d != f32.Pt(2, 3) {
		t.Errorf("shadow should be offset by (2,3), got %v", d)
	}
}

func TestRenderGridCallbacks(t *testing.T) {
	grid := DefaultGrid()
	grid.DrawVertical = false
	if err := grid.SetHorizontalInterval(2); err != nil {
		t.Fatalf("setting interval failed: %v", err)
	}
	var styled []float64
	grid.HorizontalStyle = func(v float64) GridLine {
		styled = append(styled, v)
		return GridLine{Color: color.NRGBA{A: 255}, Width: 1}
	}
	grid.ShowHorizontal = func(v float64) bool { return v != 4 }
	state := ChartState{
		XAxis: AxisRange{Min: 0, Max: 10},
		YAxis: AxisRange{Min: 0, Max: 10},
		Grid:  grid,
	}
	var canvas recordCanvas
	var r Renderer
	if err := r.Render(&canvas, &state, Viewport{Width: 100, Height: 100}); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	// Lines at 0, 2, 6, 8, 10; the filter vetoes 4.
	if got := len(canvas.calls); got != 5 {
		t.Errorf("expected 5 grid lines, got %d (%v)", got, canvas.kinds())
	}
	for _, v := range styled {
		if v == 4 {
			t.Error("vetoed lines should never reach the styler")
		}
	}
}

func TestGridIntervalValidation(t *testing.T) {
	grid := DefaultGrid()
	if err := grid.SetHorizontalInterval(0); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("zero interval must be rejected, got %v", err)
	}
	if err := grid.SetVerticalInterval(-1); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("negative interval must be rejected, got %v", err)
	}
	if err := grid.SetHorizontalInterval(0.5); err != nil {
		t.Errorf("positive interval must be accepted, got %v", err)
	}
}

func TestRenderRunawayInterval(t *testing.T) {
	grid := DefaultGrid()
	grid.DrawVertical = false
	if err := grid.SetHorizontalInterval(1); err != nil {
		t.Fatalf("setting interval failed: %v", err)
	}
	state := ChartState{
		XAxis: AxisRange{Min: 0, Max: 10},
		// An interval of 1 cannot advance values of this magnitude.
		YAxis: AxisRange{Min: 1e17, Max: 2e17},
		Grid:  grid,
	}
	var canvas recordCanvas
	var r Renderer
	err := r.Render(&canvas, &state, Viewport{Width: 100, Height: 100})
	if !errors.Is(err, ErrInvalidInterval) {
		t.Errorf("expected ErrInvalidInterval, got %v", err)
	}
}
