package core

import "time"

// DefaultMaxCatchUp bounds how many ticks a single Advance call may report
// after a long stall (window drag, debugger pause).
const DefaultMaxCatchUp = 8

// FixedStep accumulates elapsed wall time and converts it into whole
// simulation ticks at a steady ticks-per-second rate. Fractional ticks are
// carried over to the next call, never executed.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	maxCatchUp  int
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
// The accumulator starts primed with one step so the first frame ticks.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{maxCatchUp: DefaultMaxCatchUp}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Step returns the fixed tick duration.
func (f *FixedStep) Step() time.Duration { return f.step }

// SetMaxCatchUp changes the per-call tick cap. Values below one disable the cap.
func (f *FixedStep) SetMaxCatchUp(n int) { f.maxCatchUp = n }

// Advance adds delta to the accumulator and returns how many whole ticks are
// due. When the cap is hit the surplus time is dropped.
func (f *FixedStep) Advance(delta time.Duration) int {
	if delta > 0 {
		f.accumulator += delta
	}
	ticks := 0
	for f.accumulator >= f.step {
		f.accumulator -= f.step
		ticks++
		if f.maxCatchUp > 0 && ticks >= f.maxCatchUp {
			f.accumulator = 0
			break
		}
	}
	return ticks
}

// Due measures the wall time since the previous call and reports the number
// of ticks to run now.
func (f *FixedStep) Due() int {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	return f.Advance(delta)
}

// Reset drops any accumulated time.
func (f *FixedStep) Reset() {
	f.accumulator = 0
	f.last = time.Time{}
}
