package axischart

import "testing"

func TestPixelXBounds(t *testing.T) {
	r := AxisRange{Min: -3, Max: 17}
	const width = 640
	if got := PixelX(r.Min, r, width); got != 0 {
		t.Errorf("expected min to map to 0, got %f", got)
	}
	if got := PixelX(r.Max, r, width); got != width {
		t.Errorf("expected max to map to %d, got %f", width, got)
	}
	prev := PixelX(r.Min, r, width)
	for v := r.Min; v <= r.Max; v += 0.25 {
		cur := PixelX(v, r, width)
		if cur < prev {
			t.Errorf("mapping not monotonic: %f after %f at value %f", cur, prev, v)
		}
		prev = cur
	}
}

func TestPixelYBounds(t *testing.T) {
	r := AxisRange{Min: 0, Max: 100}
	const height = 480
	if got := PixelY(r.Min, r, height); got != height {
		t.Errorf("expected min to map to the bottom (%d), got %f", height, got)
	}
	if got := PixelY(r.Max, r, height); got != 0 {
		t.Errorf("expected max to map to the top (0), got %f", got)
	}
	prev := PixelY(r.Min, r, height)
	for v := r.Min; v <= r.Max; v++ {
		cur := PixelY(v, r, height)
		if cur > prev {
			t.Errorf("flipped mapping not monotonic: %f after %f at value %f", cur, prev, v)
		}
		prev = cur
	}
}

func TestDegenerateRange(t *testing.T) {
	r := AxisRange{Min: 5, Max: 5}
	for _, v := range []float64{-100, 0, 5, 100} {
		if got := PixelX(v, r, 640); got != 0 {
			t.Errorf("degenerate range should map %f to the left edge, got %f", v, got)
		}
		if got := PixelY(v, r, 480); got != 480 {
			t.Errorf("degenerate range should map %f to the bottom edge, got %f", v, got)
		}
	}
}

func TestPixelPoint(t *testing.T) {
	x := AxisRange{Min: 0, Max: 10}
	y := AxisRange{Min: 0, Max: 10}
	vp := Viewport{Width: 100, Height: 200}
	px, py := PixelPoint(Pt(5, 5), x, y, vp)
	if px != 50 {
		t.Errorf("expected px 50, got %f", px)
	}
	if py != 100 {
		t.Errorf("expected py 100, got %f", py)
	}
}
