package axischart

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrInvalidConfiguration indicates a chart configuration that can
// never render, such as a zero grid interval.
var ErrInvalidConfiguration = errors.New("axischart: invalid configuration")

// GridLine is the stroke for a single grid line.
type GridLine struct {
	Color  color.NRGBA
	Width  float32
	Dashes []float32
}

// GridLineStyler returns the stroke to use for the grid line at the
// given axis value. Implementations must be pure: the renderer may
// call them any number of times per frame.
type GridLineStyler func(value float64) GridLine

// GridLineFilter reports whether the grid line at the given axis value
// should be drawn at all.
type GridLineFilter func(value float64) bool

// DefaultGridLine is the styler used when a GridSpec carries none.
func DefaultGridLine(value float64) GridLine {
	return GridLine{
		Color: color.NRGBA{A: 50},
		Width: 1,
	}
}

// GridSpec configures the background grid of a chart. The zero value
// draws nothing; DefaultGrid returns a spec with both directions
// enabled and intervals computed from the data range.
type GridSpec struct {
	Show           bool
	DrawHorizontal bool
	DrawVertical   bool

	// HorizontalStyle and VerticalStyle pick per-line strokes; nil
	// means DefaultGridLine.
	HorizontalStyle GridLineStyler
	VerticalStyle   GridLineStyler

	// ShowHorizontal and ShowVertical veto individual lines; nil
	// means every line is drawn.
	ShowHorizontal GridLineFilter
	ShowVertical   GridLineFilter

	// Explicit intervals. nil means the renderer computes one with
	// NiceInterval. Set through the interval setters so that zero
	// values are rejected up front instead of hanging iteration.
	horizontalInterval *float64
	verticalInterval   *float64
}

// DefaultGrid returns a grid spec drawing both line directions at
// computed intervals.
func DefaultGrid() GridSpec {
	return GridSpec{
		Show:           true,
		DrawHorizontal: true,
		DrawVertical:   true,
	}
}

// SetHorizontalInterval fixes the data-space spacing of horizontal
// grid lines. Intervals that are zero, negative, or otherwise unable
// to advance iteration are rejected with ErrInvalidConfiguration.
func (g *GridSpec) SetHorizontalInterval(v float64) error {
	if v <= 0 {
		return fmt.Errorf("%w: horizontal grid interval %v must be positive", ErrInvalidConfiguration, v)
	}
	g.horizontalInterval = &v
	return nil
}

// SetVerticalInterval fixes the data-space spacing of vertical grid
// lines, with the same validation as SetHorizontalInterval.
func (g *GridSpec) SetVerticalInterval(v float64) error {
	if v <= 0 {
		return fmt.Errorf("%w: vertical grid interval %v must be positive", ErrInvalidConfiguration, v)
	}
	g.verticalInterval = &v
	return nil
}

// ClearHorizontalInterval reverts horizontal lines to computed
// spacing.
func (g *GridSpec) ClearHorizontalInterval() { g.horizontalInterval = nil }

// ClearVerticalInterval reverts vertical lines to computed spacing.
func (g *GridSpec) ClearVerticalInterval() { g.verticalInterval = nil }

// HorizontalInterval returns the explicit horizontal interval, if one
// is set.
func (g *GridSpec) HorizontalInterval() (float64, bool) {
	if g.horizontalInterval == nil {
		return 0, false
	}
	return *g.horizontalInterval, true
}

// VerticalInterval returns the explicit vertical interval, if one is
// set.
func (g *GridSpec) VerticalInterval() (float64, bool) {
	if g.verticalInterval == nil {
		return 0, false
	}
	return *g.verticalInterval, true
}

// Lerp interpolates the numeric parts of the spec toward target at
// progress t. Explicit intervals interpolate when both sides carry
// one; flags, callbacks, and absent intervals snap to the target's
// values.
func (g GridSpec) Lerp(target GridSpec, t float64) GridSpec {
	out := target
	if g.horizontalInterval != nil && target.horizontalInterval != nil {
		v := lerp(*g.horizontalInterval, *target.horizontalInterval, t)
		out.horizontalInterval = &v
	}
	if g.verticalInterval != nil && target.verticalInterval != nil {
		v := lerp(*g.verticalInterval, *target.verticalInterval, t)
		out.verticalInterval = &v
	}
	return out
}

func (g *GridSpec) horizontalStyler() GridLineStyler {
	if g.HorizontalStyle != nil {
		return g.HorizontalStyle
	}
	return DefaultGridLine
}

func (g *GridSpec) verticalStyler() GridLineStyler {
	if g.VerticalStyle != nil {
		return g.VerticalStyle
	}
	return DefaultGridLine
}

func (g *GridSpec) drawsHorizontal(value float64) bool {
	return g.ShowHorizontal == nil || g.ShowHorizontal(value)
}

func (g *GridSpec) drawsVertical(value float64) bool {
	return g.ShowVertical == nil || g.ShowVertical(value)
}
