package sim

import (
	"math"
	"testing"
)

func TestTimerOnce(t *testing.T) {
	tm := NewTimer(1, Once)

	if tm.Tick(0.6) {
		t.Fatal("timer finished early")
	}
	if !tm.Tick(0.6) {
		t.Fatal("timer should finish after 1.2s")
	}
	if !tm.Finished() || !tm.JustFinished() {
		t.Error("finished flags not set")
	}
	if tm.Tick(1) {
		t.Error("one-shot timer completed twice")
	}
	if tm.JustFinished() {
		t.Error("JustFinished should clear on the next tick")
	}
	if tm.Percent() != 1 || tm.Remaining() != 0 {
		t.Errorf("Percent() = %f Remaining() = %f, expected 1 and 0", tm.Percent(), tm.Remaining())
	}

	tm.Reset()
	if tm.Finished() || tm.Elapsed() != 0 {
		t.Error("Reset did not restart the countdown")
	}
}

func TestTimerRepeatCarriesOvershoot(t *testing.T) {
	tm := NewTimer(1, Repeat)

	if !tm.Tick(1.25) {
		t.Fatal("repeating timer should complete")
	}
	if math.Abs(tm.Elapsed()-0.25) > 1e-12 {
		t.Errorf("Elapsed() = %f, expected 0.25 carried over", tm.Elapsed())
	}
	if tm.Finished() {
		t.Error("repeating timer should never report finished")
	}

	completions := 0
	for range 40 {
		if tm.Tick(0.25) {
			completions++
		}
	}
	if completions != 10 {
		t.Errorf("completions = %d over 10s, expected 10", completions)
	}
}

func TestTimerPause(t *testing.T) {
	tm := NewTimer(1, Once)
	tm.Pause()
	if tm.Tick(5) {
		t.Error("paused timer completed")
	}
	tm.Unpause()
	if tm.Elapsed() != 0 {
		t.Errorf("paused timer advanced to %f", tm.Elapsed())
	}
	tm.Tick(0.5)
	if tm.Percent() != 0.5 || tm.PercentLeft() != 0.5 {
		t.Errorf("Percent() = %f, expected 0.5", tm.Percent())
	}
}

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(99), NewRNG(99)
	for i := range 100 {
		if a.Next() != b.Next() {
			t.Fatalf("draw %d diverged", i)
		}
	}

	r := NewRNG(0)
	if r.State() != 1 {
		t.Errorf("zero seed state = %d, expected 1", r.State())
	}
	for range 1000 {
		f := r.Range(-5, 5)
		if f < -5 || f >= 5 {
			t.Fatalf("Range(-5, 5) = %f", f)
		}
		if n := r.Intn(7); n < 0 || n >= 7 {
			t.Fatalf("Intn(7) = %d", n)
		}
	}
}

func TestVec(t *testing.T) {
	v := V(3, 4)
	if v.Len() != 5 || v.LenSq() != 25 {
		t.Errorf("Len() = %f LenSq() = %f", v.Len(), v.LenSq())
	}
	if n := v.Normalize(); math.Abs(n.Len()-1) > 1e-12 {
		t.Errorf("Normalize() length = %f", n.Len())
	}
	if !(Vec2{}).Normalize().IsZero() {
		t.Error("normalizing zero should stay zero")
	}
	if d := V(1, 1).DistSq(V(4, 5)); d != 25 {
		t.Errorf("DistSq = %f, expected 25", d)
	}
}

func TestCirclesOverlapIsStrict(t *testing.T) {
	if circlesOverlap(V(0, 0), 2, V(5, 0), 3) {
		t.Error("touching circles should not overlap")
	}
	if !circlesOverlap(V(0, 0), 2, V(4.9, 0), 3) {
		t.Error("intersecting circles should overlap")
	}
}

func TestFootprintContains(t *testing.T) {
	fp := Footprint{HalfW: 16, HalfH: 20, OffsetY: -12}
	c := V(100, 0)

	tests := []struct {
		p    Vec2
		want bool
	}{
		{V(100, -12), true},
		{V(115, 7), true},
		{V(116, -12), false}, // on the edge
		{V(100, 10), false},  // above the shifted box
		{V(100, -31), true},
		{V(100, -33), false},
	}
	for _, tc := range tests {
		if got := fp.Contains(c, tc.p); got != tc.want {
			t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.want)
		}
	}
}
