package axischart

import (
	"time"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
)

// Widget displays an animated chart as a Gio widget. It owns the
// transition between chart states and redraws itself until the
// transition settles.
type Widget struct {
	transition Transition
	renderer   Renderer
	// TransitionDuration is used by SetState. Zero means jump
	// without animating.
	TransitionDuration time.Duration
}

// SetState makes target the displayed chart state, animating from the
// current one over TransitionDuration.
func (w *Widget) SetState(target ChartState, now time.Time) {
	if w.TransitionDuration <= 0 {
		w.transition.Jump(target)
		return
	}
	w.transition.Animate(target, now, w.TransitionDuration)
}

// State returns the chart state the widget is displaying or animating
// toward.
func (w *Widget) State() ChartState {
	return w.transition.Target()
}

// SetEasing configures the transition easing.
func (w *Widget) SetEasing(e Easing) {
	w.transition.SetEasing(e)
}

// Layout draws the chart into the maximum constraint area.
func (w *Widget) Layout(gtx layout.Context) layout.Dimensions {
	size := gtx.Constraints.Max
	state := w.transition.At(gtx.Now)
	if w.transition.Animating(gtx.Now) {
		gtx.Execute(op.InvalidateCmd{})
	}

	// Record the frame so a failed render presents nothing instead of
	// a partially drawn chart.
	macro := op.Record(gtx.Ops)
	canvas := NewGioCanvas(gtx.Ops)
	vp := Viewport{Width: float32(size.X), Height: float32(size.Y)}
	err := w.renderer.Render(canvas, &state, vp)
	call := macro.Stop()
	if err != nil {
		return layout.Dimensions{Size: size}
	}

	if state.Clip {
		defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	}
	call.Add(gtx.Ops)
	return layout.Dimensions{Size: size}
}
