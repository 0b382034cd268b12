package axischart

import (
	"image/color"
	"math"

	"golang.org/x/exp/constraints"
)

func lerp[T constraints.Float](a, b T, t float64) T {
	return a + T(float64(b-a)*t)
}

func ceil[T constraints.Integer | constraints.Float](a T) T {
	return T(math.Ceil(float64(a)))
}

func floor[T constraints.Integer | constraints.Float](a T) T {
	return T(math.Floor(float64(a)))
}

// LerpColor interpolates two colors channel-wise at progress t.
func LerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	return color.NRGBA{
		R: lerpChannel(a.R, b.R, t),
		G: lerpChannel(a.G, b.G, t),
		B: lerpChannel(a.B, b.B, t),
		A: lerpChannel(a.A, b.A, t),
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	v := math.Round(float64(a) + (float64(b)-float64(a))*t)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// lerpFloats interpolates two numeric lists element-wise up to the
// shorter list's length. Interpolating a list against itself returns
// an equal list.
func lerpFloats(a, b []float32, t float64) []float32 {
	n := min(len(a), len(b))
	if n == 0 {
		if len(b) == 0 {
			return nil
		}
		out := make([]float32, len(b))
		copy(out, b)
		return out
	}
	out := make([]float32, n)
	for i := range out {
		out[i] = lerp(a[i], b[i], t)
	}
	return out
}
