package core

import "time"

// FixedStep paces simulation steps at a steady rate independent of the frame
// rate of whatever drives it.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep that allows rate steps per second.
func NewFixedStep(rate float64) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetRate(rate)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the step rate. Non-positive rates fall back to 10 steps per
// second.
func (f *FixedStep) SetRate(rate float64) {
	if rate <= 0 {
		rate = 10
	}
	f.step = time.Duration(float64(time.Second) / rate)
}

// Due returns how many steps have accumulated since the previous call.
func (f *FixedStep) Due() int {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.step <= 0 {
		return 0
	}
	n := int(f.accumulator / f.step)
	f.accumulator -= time.Duration(n) * f.step
	return n
}
