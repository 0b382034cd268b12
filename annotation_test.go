package axischart

import (
	"testing"

	"gioui.org/f32"
)

func TestHorizontalAnnotationRect(t *testing.T) {
	y := AxisRange{Min: 0, Max: 10}
	vp := Viewport{Width: 200, Height: 100}
	a := HorizontalAnnotation{Y1: 2, Y2: 6}
	r := a.Rect(y, vp)
	if r.Min.X != 0 || r.Max.X != vp.Width {
		t.Errorf("horizontal annotation must span the full width, got %v", r)
	}
	if r.Min.Y != 40 || r.Max.Y != 80 {
		t.Errorf("expected vertical bounds 40..80, got %v", r)
	}
	// Swapping the span must produce the same rectangle.
	swapped := HorizontalAnnotation{Y1: 6, Y2: 2}.Rect(y, vp)
	if swapped != r {
		t.Errorf("span order should not matter: %v vs %v", swapped, r)
	}
}

func TestVerticalAnnotationRect(t *testing.T) {
	x := AxisRange{Min: 0, Max: 10}
	vp := Viewport{Width: 200, Height: 100}
	a := VerticalAnnotation{X1: 5, X2: 1}
	r := a.Rect(x, vp)
	if r.Min.Y != 0 || r.Max.Y != vp.Height {
		t.Errorf("vertical annotation must span the full height, got %v", r)
	}
	if r.Min.X != 20 || r.Max.X != 100 {
		t.Errorf("expected horizontal bounds 20..100, got %v", r)
	}
}

func TestRectFromPoints(t *testing.T) {
	r := RectFromPoints(f32.Pt(5, 1), f32.Pt(2, 8))
	want := Rect{Min: f32.Pt(2, 1), Max: f32.Pt(5, 8)}
	if r != want {
		t.Errorf("expected normalized rect %v, got %v", want, r)
	}
}
