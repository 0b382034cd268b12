package axischart

import (
	"image/color"

	"gioui.org/f32"
)

// Rect is an axis-aligned pixel rectangle. Min is the top-left corner.
type Rect struct {
	Min, Max f32.Point
}

// RectFromPoints returns the rectangle spanned by two arbitrary
// corner points, normalizing their order.
func RectFromPoints(a, b f32.Point) Rect {
	if a.X > b.X {
		a.X, b.X = b.X, a.X
	}
	if a.Y > b.Y {
		a.Y, b.Y = b.Y, a.Y
	}
	return Rect{Min: a, Max: b}
}

// HorizontalAnnotation is a filled band spanning the full viewport
// width between two values on the Y axis. Y1 and Y2 may be given in
// either order.
type HorizontalAnnotation struct {
	Y1, Y2 float64
	Color  color.NRGBA
}

// Lerp interpolates the annotation toward target at progress t.
func (a HorizontalAnnotation) Lerp(target HorizontalAnnotation, t float64) HorizontalAnnotation {
	return HorizontalAnnotation{
		Y1:    lerp(a.Y1, target.Y1, t),
		Y2:    lerp(a.Y2, target.Y2, t),
		Color: LerpColor(a.Color, target.Color, t),
	}
}

// Rect returns the pixel rectangle the annotation fills within the
// given axis range and viewport.
func (a HorizontalAnnotation) Rect(y AxisRange, vp Viewport) Rect {
	return RectFromPoints(
		f32.Pt(0, PixelY(a.Y1, y, vp.Height)),
		f32.Pt(vp.Width, PixelY(a.Y2, y, vp.Height)),
	)
}

// VerticalAnnotation is a filled band spanning the full viewport
// height between two values on the X axis. X1 and X2 may be given in
// either order.
type VerticalAnnotation struct {
	X1, X2 float64
	Color  color.NRGBA
}

// Lerp interpolates the annotation toward target at progress t.
func (a VerticalAnnotation) Lerp(target VerticalAnnotation, t float64) VerticalAnnotation {
	return VerticalAnnotation{
		X1:    lerp(a.X1, target.X1, t),
		X2:    lerp(a.X2, target.X2, t),
		Color: LerpColor(a.Color, target.Color, t),
	}
}

// Rect returns the pixel rectangle the annotation fills within the
// given axis range and viewport.
func (a VerticalAnnotation) Rect(x AxisRange, vp Viewport) Rect {
	return RectFromPoints(
		f32.Pt(PixelX(a.X1, x, vp.Width), 0),
		f32.Pt(PixelX(a.X2, x, vp.Width), vp.Height),
	)
}
