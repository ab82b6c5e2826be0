// Package sim runs cleaning trials: robots act on a shared room one step at a
// time until a coverage target is met or the step ceiling is reached.
package sim

import (
	"fmt"

	"roomba/internal/core"
	"roomba/internal/robot"
	"roomba/internal/room"
)

// DefaultStepCeiling bounds every trial. A result equal to the ceiling means
// the robots did not reach the coverage target.
const DefaultStepCeiling = 99999

// Observer sees the trial after every step. Returning true abandons the trial
// at its current step count.
type Observer interface {
	Observe(t *Trial) (quit bool)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(t *Trial) bool

// Observe calls f.
func (f ObserverFunc) Observe(t *Trial) bool { return f(t) }

// Trial is one run of robots in a room. Robots act in slice order within a
// step; the room is only mutated through their actions.
type Trial struct {
	name     string
	room     *room.Room
	robots   []*robot.Robot
	coverage float64
	ceiling  int

	steps     int
	abandoned bool
	failed    bool

	display []uint8
}

// NewTrial prepares a trial. coverage is the fraction of reachable tiles that
// must be clean; a non-positive ceiling selects DefaultStepCeiling.
func NewTrial(name string, rm *room.Room, robots []*robot.Robot, coverage float64, ceiling int) *Trial {
	if ceiling <= 0 {
		ceiling = DefaultStepCeiling
	}
	return &Trial{
		name:     name,
		room:     rm,
		robots:   robots,
		coverage: coverage,
		ceiling:  ceiling,
		display:  make([]uint8, rm.Width()*rm.Height()),
	}
}

// Covered reports whether the coverage target has been met.
func (t *Trial) Covered() bool {
	total, cleaned := t.room.Coverage()
	return float64(cleaned) >= t.coverage*float64(total)
}

// Done reports whether the trial has ended for any reason.
func (t *Trial) Done() bool {
	return t.abandoned || t.failed || t.steps >= t.ceiling || t.Covered()
}

// Step advances every robot by one action. It reports whether the trial is
// over. An agent error ends the trial and is returned.
func (t *Trial) Step() (bool, error) {
	if t.Done() {
		return true, nil
	}
	for i, r := range t.robots {
		if err := r.Step(); err != nil {
			t.failed = true
			return true, fmt.Errorf("step %d, robot %d: %w", t.steps+1, i, err)
		}
	}
	t.steps++
	return t.Done(), nil
}

// Abandon ends the trial early, keeping the steps taken so far.
func (t *Trial) Abandon() { t.abandoned = true }

// Abandoned reports whether the trial was stopped by an observer.
func (t *Trial) Abandoned() bool { return t.abandoned }

// Steps returns the number of completed steps.
func (t *Trial) Steps() int { return t.steps }

// Ceiling returns the step limit of the trial.
func (t *Trial) Ceiling() int { return t.ceiling }

// Room exposes the trial's room for read-only inspection.
func (t *Trial) Room() *room.Room { return t.room }

// Name returns the label the trial was created with.
func (t *Trial) Name() string { return t.name }

// Size reports the room dimensions.
func (t *Trial) Size() core.Size { return t.room.Size() }

// Coverage returns the clean fraction of reachable tiles.
func (t *Trial) Coverage() float64 {
	total, cleaned := t.room.Coverage()
	if total == 0 {
		return 1
	}
	return float64(cleaned) / float64(total)
}

// Robots returns render markers for every robot.
func (t *Trial) Robots() []core.RobotMarker {
	out := make([]core.RobotMarker, len(t.robots))
	for i, r := range t.robots {
		p := r.Pose()
		out[i] = core.RobotMarker{X: p.Position.X, Y: p.Position.Y, Heading: p.Heading}
	}
	return out
}

var _ core.Scene = (*Trial)(nil)

// RunTrial steps a fresh trial to completion and returns its step count. obs
// may be nil.
func RunTrial(rm *room.Room, robots []*robot.Robot, coverage float64, ceiling int, obs Observer) (int, error) {
	t := NewTrial("", rm, robots, coverage, ceiling)
	for !t.Done() {
		if _, err := t.Step(); err != nil {
			return t.Steps(), err
		}
		if obs != nil && obs.Observe(t) {
			t.Abandon()
		}
	}
	return t.Steps(), nil
}
