package axischart

import (
	"fmt"
	"image/color"

	"gioui.org/f32"
)

// Stroke carries the styling for one stroked path.
type Stroke struct {
	Color  color.NRGBA
	Width  float32
	Cap    StrokeCap
	Join   StrokeJoin
	Dashes []float32
	// Blur softens the stroke. Canvases without a blur primitive may
	// approximate or ignore it.
	Blur float32
}

// Canvas is the narrow rasterization surface the renderer draws into.
// Implementations turn the geometry into actual pixels; the renderer
// never does.
type Canvas interface {
	FillRect(r Rect, c color.NRGBA)
	FillPath(p *Path, c color.NRGBA)
	StrokePath(p *Path, s Stroke)
}

// Renderer sequences one frame of chart drawing: background, range
// annotations, grid, then series strokes, all against a single
// (usually interpolated) chart state.
//
// A renderer's scratch buffers are reused between frames, so a single
// renderer must not be shared between goroutines. It holds no state
// that outlives a frame.
type Renderer struct {
	path   Path
	pixels []f32.Point
}

// Render draws state into canvas at the given viewport size. The only
// errors are configuration errors surfaced by grid iteration; a frame
// either completes or should not be presented.
func (r *Renderer) Render(canvas Canvas, state *ChartState, vp Viewport) error {
	if state.Background.A > 0 {
		canvas.FillRect(Rect{Max: f32.Pt(vp.Width, vp.Height)}, state.Background)
	}
	r.drawAnnotations(canvas, state, vp)
	if err := r.drawGrid(canvas, state, vp); err != nil {
		return err
	}
	r.drawSeries(canvas, state, vp)
	return nil
}

func (r *Renderer) drawAnnotations(canvas Canvas, state *ChartState, vp Viewport) {
	for _, a := range state.Horizontal {
		canvas.FillRect(a.Rect(state.YAxis, vp), a.Color)
	}
	for _, a := range state.Vertical {
		canvas.FillRect(a.Rect(state.XAxis, vp), a.Color)
	}
}

func (r *Renderer) drawGrid(canvas Canvas, state *ChartState, vp Viewport) error {
	grid := &state.Grid
	if !grid.Show {
		return nil
	}
	if grid.DrawHorizontal {
		interval, ok := grid.HorizontalInterval()
		if !ok {
			interval = NiceInterval(vp.Height, state.YAxis.Span())
		}
		it := AxisValues{
			Min:        state.YAxis.Min,
			Max:        state.YAxis.Max,
			Baseline:   state.YAxis.Baseline,
			Interval:   interval,
			IncludeMin: true,
			IncludeMax: true,
		}
		styler := grid.horizontalStyler()
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !grid.drawsHorizontal(v) {
				continue
			}
			y := PixelY(v, state.YAxis, vp.Height)
			r.strokeGridLine(canvas, styler(v), f32.Pt(0, y), f32.Pt(vp.Width, y))
		}
		if err := it.Err(); err != nil {
			return fmt.Errorf("horizontal grid: %w", err)
		}
	}
	if grid.DrawVertical {
		interval, ok := grid.VerticalInterval()
		if !ok {
			interval = NiceInterval(vp.Width, state.XAxis.Span())
		}
		it := AxisValues{
			Min:        state.XAxis.Min,
			Max:        state.XAxis.Max,
			Baseline:   state.XAxis.Baseline,
			Interval:   interval,
			IncludeMin: true,
			IncludeMax: true,
		}
		styler := grid.verticalStyler()
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !grid.drawsVertical(v) {
				continue
			}
			x := PixelX(v, state.XAxis, vp.Width)
			r.strokeGridLine(canvas, styler(v), f32.Pt(x, 0), f32.Pt(x, vp.Height))
		}
		if err := it.Err(); err != nil {
			return fmt.Errorf("vertical grid: %w", err)
		}
	}
	return nil
}

func (r *Renderer) strokeGridLine(canvas Canvas, style GridLine, from, to f32.Point) {
	if style.Width <= 0 || style.Color.A == 0 {
		return
	}
	r.path.Reset()
	r.path.MoveTo(from)
	r.path.LineTo(to)
	canvas.StrokePath(&r.path, Stroke{
		Color:  style.Color,
		Width:  style.Width,
		Dashes: style.Dashes,
	})
}

func (r *Renderer) drawSeries(canvas Canvas, state *ChartState, vp Viewport) {
	for i := range state.Series {
		s := &state.Series[i]
		if s.Width <= 0 {
			continue
		}
		// Each break-separated segment is an independent stroke so
		// that gaps in the data never draw a connecting line.
		for _, segment := range s.Segments() {
			r.pixels = r.pixels[:0]
			for _, p := range segment {
				px, py := PixelPoint(p, state.XAxis, state.YAxis, vp)
				r.pixels = append(r.pixels, f32.Pt(px, py))
			}
			r.path.Reset()
			if s.Stepped {
				AppendStepPath(&r.path, r.pixels, s.StepDirection, false)
			} else {
				AppendLinePath(&r.path, r.pixels, CurveStyle{
					Curved:           s.Curved,
					Smoothness:       s.Smoothness,
					PreventOvershoot: s.PreventOvershoot,
					Threshold:        s.OvershootThreshold,
				}, false)
			}
			if len(r.path.Ops) < 2 {
				// A lone point has no stroked geometry.
				continue
			}
			if min, max, ok := pathBounds(&r.path); !ok ||
				max.X < -s.Width || max.Y < -s.Width ||
				min.X > vp.Width+s.Width || min.Y > vp.Height+s.Width {
				// The whole segment lies outside the viewport.
				continue
			}
			if s.Shadow.Color.A > 0 {
				shadowPath := r.path.Translated(f32.Pt(s.Shadow.OffsetX, s.Shadow.OffsetY))
				canvas.StrokePath(&shadowPath, Stroke{
					Color: s.Shadow.Color,
					Width: s.Width,
					Cap:   s.Cap,
					Join:  s.Join,
					Blur:  s.Shadow.Blur,
				})
			}
			canvas.StrokePath(&r.path, Stroke{
				Color:  s.Color,
				Width:  s.Width,
				Cap:    s.Cap,
				Join:   s.Join,
				Dashes: s.Dashes,
			})
		}
	}
}
