package axischart

import "time"

// Easing reshapes animation progress. It maps t in [0, 1] to eased
// progress, with Ease(0) == 0 and Ease(1) == 1.
type Easing func(t float64) float64

// EaseLinear is the identity easing.
func EaseLinear(t float64) float64 { return t }

// EaseInOutCubic accelerates through the first half of the transition
// and decelerates through the second.
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	d := 2*t - 2
	return 1 + d*d*d/2
}

// Transition drives an animated change between two chart states. It
// owns the previous and target snapshots and derives the progress
// scalar from wall-clock time; the actual frame cadence comes from
// whatever render loop queries At.
//
// The zero value holds an empty chart and is ready for use.
type Transition struct {
	prev, target ChartState
	start        time.Time
	duration     time.Duration
	easing       Easing
}

// Jump replaces the chart state without animating.
func (tr *Transition) Jump(state ChartState) {
	tr.prev = state
	tr.target = state
	tr.duration = 0
}

// Animate starts a transition from the currently displayed state to
// target. Retargeting mid-flight snapshots the in-progress
// interpolated state as the new starting point, so the chart never
// jumps.
func (tr *Transition) Animate(target ChartState, now time.Time, duration time.Duration) {
	tr.prev = tr.At(now)
	tr.target = target
	tr.start = now
	tr.duration = duration
}

// SetEasing replaces the easing applied to subsequent At calls. A nil
// easing means linear.
func (tr *Transition) SetEasing(e Easing) {
	tr.easing = e
}

// Target returns the state the transition is heading toward.
func (tr *Transition) Target() ChartState {
	return tr.target
}

// At returns the interpolated chart state at the given time. Progress
// is clamped to [0, 1], so times before the start return the previous
// state and times after the end return the target.
func (tr *Transition) At(now time.Time) ChartState {
	t := tr.progress(now)
	if t >= 1 {
		return tr.target
	}
	if tr.easing != nil {
		t = tr.easing(t)
	}
	return tr.prev.Lerp(tr.target, t)
}

// Animating reports whether the transition is still in flight at the
// given time.
func (tr *Transition) Animating(now time.Time) bool {
	return tr.progress(now) < 1
}

func (tr *Transition) progress(now time.Time) float64 {
	if tr.duration <= 0 {
		return 1
	}
	t := float64(now.Sub(tr.start)) / float64(tr.duration)
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
