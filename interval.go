package axischart

import (
	"errors"
	"math"
)

// ErrInvalidInterval indicates a grid or tick interval so small
// relative to the traversed range that iteration cannot make forward
// progress.
var ErrInvalidInterval = errors.New("axischart: interval makes no forward progress")

// targetLineSpacing is the pixel distance aimed for between adjacent
// grid lines when no explicit interval is configured.
const targetLineSpacing = 50

// minimalInterval is returned for degenerate spans so that downstream
// iteration always terminates.
const minimalInterval = 1.0

// NiceInterval picks a human-friendly interval between grid lines for
// an axis of the given pixel length covering the given data span. The
// result is always one of {1, 2, 5} times a power of ten, chosen as
// the smallest such value that keeps line spacing at or above
// targetLineSpacing. The result is always strictly positive.
func NiceInterval(pixelLength float32, span float64) float64 {
	if span <= 0 || pixelLength <= 0 {
		return minimalInterval
	}
	lines := float64(pixelLength) / targetLineSpacing
	if lines < 1 {
		lines = 1
	}
	raw := span / lines
	magnitude := math.Pow(10, floor(math.Log10(raw)))
	for _, mult := range [...]float64{1, 2, 5} {
		if step := mult * magnitude; step >= raw {
			return step
		}
	}
	return 10 * magnitude
}

// maxAxisSteps bounds how many values a single axis traversal may
// yield before it is treated as runaway.
const maxAxisSteps = 1 << 16

// AxisValues iterates the interval-spaced axis values within
// [Min, Max]. Values are anchored to multiples of Interval counted
// from Baseline rather than from Min, so grid lines stay put while
// the visible range pans.
//
// IncludeMin and IncludeMax control whether a value exactly equal to
// the corresponding bound is yielded.
//
// The iterator guards against intervals that cannot advance the
// current position (for example intervals that underflow to no-ops
// when added to a large baseline): if no forward progress occurs, or
// the traversal exceeds maxAxisSteps, iteration stops and Err returns
// ErrInvalidInterval.
type AxisValues struct {
	Min, Max   float64
	Baseline   float64
	Interval   float64
	IncludeMin bool
	IncludeMax bool

	cur     float64
	steps   int
	started bool
	err     error
}

// Reset rewinds the iterator to its first value.
func (it *AxisValues) Reset() {
	it.started = false
	it.steps = 0
	it.err = nil
}

// Next returns the next axis value. The second return is false once
// the sequence is exhausted or iteration has failed; check Err to
// distinguish.
func (it *AxisValues) Next() (float64, bool) {
	if it.err != nil {
		return 0, false
	}
	if !it.started {
		it.started = true
		it.cur = it.start()
	} else {
		next := it.cur + it.Interval
		if next <= it.cur {
			it.err = ErrInvalidInterval
			return 0, false
		}
		it.cur = next
	}
	it.steps++
	if it.steps > maxAxisSteps {
		it.err = ErrInvalidInterval
		return 0, false
	}
	if it.cur > it.Max {
		return 0, false
	}
	if it.cur == it.Max && !it.IncludeMax {
		return 0, false
	}
	return it.cur, true
}

// Err returns the error that terminated iteration, if any.
func (it *AxisValues) Err() error {
	return it.err
}

// start computes the first candidate value: the nearest multiple of
// Interval relative to Baseline that is not below Min, nudged forward
// when Min itself is excluded.
func (it *AxisValues) start() float64 {
	v := it.Baseline + ceil((it.Min-it.Baseline)/it.Interval)*it.Interval
	if v < it.Min {
		// Guard against the division rounding just below Min.
		v += it.Interval
	}
	if v == it.Min && !it.IncludeMin {
		v += it.Interval
	}
	return v
}
