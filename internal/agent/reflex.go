package agent

import (
	"roomba/internal/robot"
	pcore "roomba/pkg/core"
)

var continuousBodies = []robot.Capability{robot.Continuous, robot.Realistic}

// Reflex reacts to the current percept only: turn left on a bump, clean a
// dirty tile, otherwise drive forward.
type Reflex struct {
	Degrees float64
}

// Decide implements robot.Agent.
func (r *Reflex) Decide(p robot.Percept) robot.Action {
	switch {
	case p.Bump:
		return robot.TurnLeft(r.Degrees)
	case p.Dirty:
		return robot.Suck()
	}
	return robot.Forward(0)
}

// RandomReflex turns a random 45 to 55 degrees on every bump.
type RandomReflex struct {
	rng *pcore.RNG
}

// Decide implements robot.Agent.
func (r *RandomReflex) Decide(p robot.Percept) robot.Action {
	switch {
	case p.Bump:
		return robot.TurnLeft(r.rng.Uniform(45, 55))
	case p.Dirty:
		return robot.Suck()
	}
	return robot.Forward(0)
}

// ReflexState is a reflex agent with a counter: after Patience forward moves
// without finding dirt it turns 45 degrees.
type ReflexState struct {
	Patience int
	forwards int
}

// Decide implements robot.Agent.
func (r *ReflexState) Decide(p robot.Percept) robot.Action {
	switch {
	case p.Bump:
		return robot.TurnLeft(95)
	case p.Dirty:
		r.forwards = 0
		return robot.Suck()
	case r.forwards >= r.Patience:
		r.forwards = 0
		return robot.TurnLeft(45)
	}
	r.forwards++
	return robot.Forward(0)
}

func init() {
	Register(Entry{
		Name:        "reflex",
		Description: "turn left by param degrees on bump, suck dirt, else forward",
		Bodies:      continuousBodies,
		Param:       90,
		New: func(param float64, _ *pcore.RNG) robot.Agent {
			return &Reflex{Degrees: param}
		},
	})
	Register(Entry{
		Name:        "random-reflex",
		Description: "turn left 45-55 degrees on bump, suck dirt, else forward",
		Bodies:      continuousBodies,
		New: func(_ float64, rng *pcore.RNG) robot.Agent {
			return &RandomReflex{rng: rng}
		},
	})
	Register(Entry{
		Name:        "reflex-state",
		Description: "reflex that turns 45 degrees after param clean forward moves",
		Bodies:      continuousBodies,
		Param:       5,
		New: func(param float64, _ *pcore.RNG) robot.Agent {
			return &ReflexState{Patience: int(param)}
		},
	})
}
