package axischart

import (
	"testing"
	"time"
)

func TestTransitionClamps(t *testing.T) {
	a, b := testStates()
	var tr Transition
	tr.Jump(a)
	start := time.Unix(100, 0)
	tr.Animate(b, start, time.Second)

	before := tr.At(start.Add(-time.Second))
	if before.XAxis != a.XAxis {
		t.Errorf("times before the start should show the previous state, got %+v", before.XAxis)
	}
	after := tr.At(start.Add(2 * time.Second))
	if after.XAxis != b.XAxis {
		t.Errorf("times after the end should show the target, got %+v", after.XAxis)
	}
	if tr.Animating(start.Add(2 * time.Second)) {
		t.Error("transition should settle after its duration")
	}
	if !tr.Animating(start.Add(time.Second / 2)) {
		t.Error("transition should be in flight at half duration")
	}
	mid := tr.At(start.Add(time.Second / 2))
	if got, want := mid.XAxis.Min, 1.0; got != want {
		t.Errorf("expected x min %v midway, got %v", want, got)
	}
}

func TestTransitionRetarget(t *testing.T) {
	a, b := testStates()
	var tr Transition
	tr.Jump(a)
	start := time.Unix(0, 0)
	tr.Animate(b, start, time.Second)

	// Retargeting halfway must continue from the interpolated state,
	// not jump back to a.
	halfway := start.Add(time.Second / 2)
	shown := tr.At(halfway)
	tr.Animate(a, halfway, time.Second)
	if got := tr.At(halfway); got.XAxis != shown.XAxis {
		t.Errorf("retarget should start from the shown state %+v, got %+v", shown.XAxis, got.XAxis)
	}
	if end := tr.At(halfway.Add(time.Second)); end.XAxis != a.XAxis {
		t.Errorf("retargeted transition should land on the new target, got %+v", end.XAxis)
	}
}

func TestTransitionZeroDuration(t *testing.T) {
	a, b := testStates()
	var tr Transition
	tr.Jump(a)
	now := time.Unix(50, 0)
	tr.Animate(b, now, 0)
	if got := tr.At(now); got.XAxis != b.XAxis {
		t.Errorf("zero duration should land immediately, got %+v", got.XAxis)
	}
	if tr.Animating(now) {
		t.Error("zero duration transition should never report animating")
	}
}

func TestEasings(t *testing.T) {
	for _, e := range []Easing{EaseLinear, EaseInOutCubic} {
		if got := e(0); got != 0 {
			t.Errorf("easing must fix 0, got %v", got)
		}
		if got := e(1); got != 1 {
			t.Errorf("easing must fix 1, got %v", got)
		}
	}
	if EaseInOutCubic(0.25) >= 0.25 {
		t.Error("cubic easing should lag in the first half")
	}
	if EaseInOutCubic(0.75) <= 0.75 {
		t.Error("cubic easing should lead in the second half")
	}
}
