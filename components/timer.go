package components

import "time"

// TimerMode selects whether a timer stops or wraps when it completes.
type TimerMode int

const (
	TimerOnce TimerMode = iota
	TimerRepeating
)

// timerSlack absorbs the truncation in steps such as time.Second/60, so a
// 3s window completes after exactly 180 of them.
const timerSlack = time.Microsecond

// Timer is a step-driven stopwatch with a fixed duration.
type Timer struct {
	Duration time.Duration
	Mode     TimerMode

	elapsed      time.Duration
	finished     bool
	justFinished bool
}

func NewTimer(d time.Duration, mode TimerMode) Timer {
	return Timer{Duration: d, Mode: mode}
}

// Tick advances the timer by delta. A once timer clamps at its duration; a
// repeating timer wraps and keeps the remainder.
func (t *Timer) Tick(delta time.Duration) {
	t.justFinished = false
	if t.Mode == TimerOnce && t.finished {
		return
	}

	t.elapsed += delta
	if t.elapsed+timerSlack < t.Duration {
		return
	}

	t.justFinished = true
	if t.Mode == TimerOnce {
		t.elapsed = t.Duration
		t.finished = true
		return
	}
	if t.Duration <= 0 {
		t.elapsed = 0
		return
	}
	for t.elapsed+timerSlack >= t.Duration {
		t.elapsed -= t.Duration
	}
	if t.elapsed < 0 {
		t.elapsed = 0
	}
}

// Elapsed returns the time accumulated in the current cycle.
func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

// Finished reports whether a once timer has completed.
func (t *Timer) Finished() bool {
	return t.finished
}

// JustFinished reports whether the last Tick completed a cycle.
func (t *Timer) JustFinished() bool {
	return t.justFinished
}
