package sim

// TimerMode selects whether a Timer stops or rearms itself after completing.
type TimerMode uint8

const (
	Once   TimerMode = iota // stops at the duration and stays finished
	Repeat                  // wraps around and keeps running
)

// Timer is a countdown measured in seconds of simulated time.
type Timer struct {
	duration float64
	elapsed  float64
	mode     TimerMode
	finished bool
	just     bool
	paused   bool
}

// NewTimer creates a running timer of the given length.
func NewTimer(seconds float64, mode TimerMode) Timer {
	return Timer{duration: seconds, mode: mode}
}

// Tick advances the timer by dt seconds and reports whether it completed
// during this call. A repeating timer completes at most once per call and
// carries any overshoot into the next period.
func (t *Timer) Tick(dt float64) bool {
	t.just = false
	if t.paused || dt <= 0 {
		return false
	}
	if t.finished && t.mode == Once {
		return false
	}

	t.elapsed += dt
	if t.elapsed < t.duration {
		return false
	}

	t.just = true
	if t.mode == Repeat {
		if t.duration > 0 {
			for t.elapsed >= t.duration {
				t.elapsed -= t.duration
			}
		} else {
			t.elapsed = 0
		}
		return true
	}

	t.elapsed = t.duration
	t.finished = true
	return true
}

// JustFinished reports whether the last Tick completed the timer.
func (t *Timer) JustFinished() bool {
	return t.just
}

// Finished reports whether a one-shot timer has completed.
// Repeating timers never report finished.
func (t *Timer) Finished() bool {
	return t.finished
}

// Reset restarts the countdown from zero.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
	t.just = false
}

// SetDuration changes the period without touching elapsed time.
func (t *Timer) SetDuration(seconds float64) {
	t.duration = seconds
}

// Duration returns the timer period in seconds.
func (t *Timer) Duration() float64 {
	return t.duration
}

// Elapsed returns seconds elapsed in the current period.
func (t *Timer) Elapsed() float64 {
	return t.elapsed
}

// Remaining returns seconds left in the current period.
func (t *Timer) Remaining() float64 {
	r := t.duration - t.elapsed
	if r < 0 {
		return 0
	}
	return r
}

// Percent returns the completed fraction of the current period in [0, 1].
func (t *Timer) Percent() float64 {
	if t.duration <= 0 {
		return 1
	}
	p := t.elapsed / t.duration
	if p > 1 {
		return 1
	}
	return p
}

// PercentLeft returns 1 - Percent.
func (t *Timer) PercentLeft() float64 {
	return 1 - t.Percent()
}

// Pause stops the timer from advancing.
func (t *Timer) Pause() {
	t.paused = true
}

// Unpause lets the timer advance again.
func (t *Timer) Unpause() {
	t.paused = false
}

// Paused reports whether the timer is paused.
func (t *Timer) Paused() bool {
	return t.paused
}
