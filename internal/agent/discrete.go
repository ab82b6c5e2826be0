package agent

import (
	"roomba/internal/robot"
	pcore "roomba/pkg/core"
)

var discreteBodies = []robot.Capability{robot.Discrete}

var discreteActions = []robot.Action{
	robot.North(), robot.South(), robot.East(), robot.West(), robot.Suck(),
}

// RandomDiscrete picks uniformly among the discrete actions.
type RandomDiscrete struct {
	rng *pcore.RNG
}

// Decide implements robot.Agent.
func (r *RandomDiscrete) Decide(robot.Percept) robot.Action {
	return discreteActions[r.rng.IntN(len(discreteActions))]
}

// Sweeper cleans row by row: it runs across until it bumps, shifts one row,
// and comes back the other way. Reaching the top or bottom edge reverses the
// vertical direction.
type Sweeper struct {
	across robot.ActionKind
	down   robot.ActionKind
	last   robot.ActionKind
}

// NewSweeper returns a sweeper that starts eastward and climbs north.
func NewSweeper() *Sweeper {
	return &Sweeper{across: robot.ActEast, down: robot.ActNorth}
}

// Decide implements robot.Agent.
func (s *Sweeper) Decide(p robot.Percept) robot.Action {
	if p.Dirty {
		return robot.Suck()
	}
	switch s.last {
	case s.across:
		if p.Bump {
			s.last = s.down
			return robot.Action{Kind: s.down}
		}
	case s.down:
		if p.Bump {
			s.down = opposite(s.down)
		}
		s.across = opposite(s.across)
	}
	s.last = s.across
	return robot.Action{Kind: s.across}
}

func opposite(k robot.ActionKind) robot.ActionKind {
	switch k {
	case robot.ActNorth:
		return robot.ActSouth
	case robot.ActSouth:
		return robot.ActNorth
	case robot.ActEast:
		return robot.ActWest
	case robot.ActWest:
		return robot.ActEast
	}
	return k
}

func init() {
	Register(Entry{
		Name:        "random-discrete",
		Description: "uniformly random North/South/East/West/Suck",
		Bodies:      discreteBodies,
		New: func(_ float64, rng *pcore.RNG) robot.Agent {
			return &RandomDiscrete{rng: rng}
		},
	})
	Register(Entry{
		Name:        "sweeper",
		Description: "row-by-row boustrophedon sweep using bumps to find row ends",
		Bodies:      discreteBodies,
		New: func(float64, *pcore.RNG) robot.Agent {
			return NewSweeper()
		},
	})
}
