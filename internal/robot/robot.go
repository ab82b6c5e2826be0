// Package robot implements the robot bodies that move through a room: their
// pose, the percept they expose to an agent, and the motion rules each
// capability set applies to an action.
package robot

import (
	"fmt"
	"math"

	"roomba/internal/geom"
	"roomba/internal/room"
	pcore "roomba/pkg/core"
)

// ErrInvalidParameter is shared with the room package so callers can test a
// single sentinel for every construction failure.
var ErrInvalidParameter = room.ErrInvalidParameter

// Capability selects the motion model of a robot.
type Capability uint8

const (
	Continuous Capability = iota
	Discrete
	// Realistic is Continuous with heading drift and random traction loss.
	Realistic
)

func (c Capability) String() string {
	switch c {
	case Continuous:
		return "continuous"
	case Discrete:
		return "discrete"
	case Realistic:
		return "realistic"
	}
	return fmt.Sprintf("Capability(%d)", uint8(c))
}

// ParseCapability resolves a capability name.
func ParseCapability(name string) (Capability, error) {
	for _, c := range []Capability{Continuous, Discrete, Realistic} {
		if c.String() == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown capability %q", ErrInvalidParameter, name)
}

// Pose is the physical state of a robot.
type Pose struct {
	Position geom.Point
	// Heading in degrees, always within [0, 360).
	Heading float64
	Speed   float64
}

// Percept is what an agent observes before choosing its next action.
type Percept struct {
	// Bump is set when the last action ran into a wall or the room edge.
	Bump bool
	// Dirty is set when the tile under the robot has not been cleaned.
	Dirty bool
}

// Body is a robot's physical side: it owns the pose and applies actions to the
// shared room.
type Body interface {
	Capability() Capability
	Pose() Pose
	Percept() Percept
	Apply(Action) error
}

// Agent chooses an action from a percept. Implementations must return an
// action from the vocabulary of the body they drive.
type Agent interface {
	Decide(Percept) Action
}

// AgentFunc adapts a plain function to Agent.
type AgentFunc func(Percept) Action

// Decide calls f.
func (f AgentFunc) Decide(p Percept) Action { return f(p) }

// Robot pairs a body with the agent driving it.
type Robot struct {
	Body
	Agent Agent
}

// Step runs one sense-decide-act cycle.
func (r *Robot) Step() error {
	return r.Apply(r.Agent.Decide(r.Percept()))
}

// Options customise robot construction.
type Options struct {
	// Start places the robot at a fixed location facing east. When nil the
	// robot starts on a random free tile facing north.
	Start *geom.Point
	// RNG drives random placement and, for realistic robots, motion noise.
	// A nil RNG falls back to a generator seeded with 0.
	RNG *pcore.RNG
}

// New constructs a body of the given capability.
func New(c Capability, rm *room.Room, speed float64, opts Options) (Body, error) {
	var (
		body Body
		err  error
	)
	switch c {
	case Continuous:
		body, err = NewContinuous(rm, speed, opts)
	case Discrete:
		body, err = NewDiscrete(rm, speed, opts)
	case Realistic:
		body, err = NewRealistic(rm, speed, opts)
	default:
		return nil, fmt.Errorf("%w: unknown capability %v", ErrInvalidParameter, c)
	}
	if err != nil {
		return nil, err
	}
	return body, nil
}

type base struct {
	room    *room.Room
	pose    Pose
	percept Percept
}

func newBase(rm *room.Room, speed float64, opts Options) (base, error) {
	if rm == nil {
		return base{}, fmt.Errorf("%w: nil room", ErrInvalidParameter)
	}
	if !(speed > 0) || math.IsInf(speed, 1) {
		return base{}, fmt.Errorf("%w: speed %v must be finite and greater than zero", ErrInvalidParameter, speed)
	}
	b := base{room: rm, pose: Pose{Speed: speed}}
	if opts.Start != nil {
		if !rm.InRoom(*opts.Start) {
			return base{}, fmt.Errorf("%w: start %v is not a free position", ErrInvalidParameter, *opts.Start)
		}
		b.pose.Position = *opts.Start
		b.pose.Heading = 90
	} else {
		rng := opts.RNG
		if rng == nil {
			rng = pcore.NewRNG(0)
		}
		pos, err := rm.RandomPosition(rng)
		if err != nil {
			return base{}, err
		}
		b.pose.Position = pos
	}
	b.sense(false)
	return b, nil
}

func (b *base) Pose() Pose       { return b.pose }
func (b *base) Percept() Percept { return b.percept }

func (b *base) sense(bump bool) {
	b.percept = Percept{Bump: bump, Dirty: b.room.TileState(b.pose.Position) == room.Dirty}
}

func (b *base) suck() {
	b.room.MarkCleaned(b.pose.Position)
	b.sense(false)
}
