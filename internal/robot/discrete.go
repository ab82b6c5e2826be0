package robot

import (
	"fmt"

	"roomba/internal/room"
)

// DiscreteBody moves one full step north, south, east or west. Its heading is
// never consulted.
type DiscreteBody struct {
	base
}

// NewDiscrete places a discrete robot in rm.
func NewDiscrete(rm *room.Room, speed float64, opts Options) (*DiscreteBody, error) {
	b, err := newBase(rm, speed, opts)
	if err != nil {
		return nil, err
	}
	return &DiscreteBody{base: b}, nil
}

// Capability reports Discrete.
func (d *DiscreteBody) Capability() Capability { return Discrete }

// Apply executes one action. A blocked move leaves the robot in place and
// reports a bump.
func (d *DiscreteBody) Apply(a Action) error {
	var heading float64
	switch a.Kind {
	case ActSuck:
		d.suck()
		return nil
	case ActNorth:
		heading = 0
	case ActEast:
		heading = 90
	case ActSouth:
		heading = 180
	case ActWest:
		heading = 270
	default:
		return fmt.Errorf("%w: %v is not a discrete action", ErrInvalidAction, a)
	}
	next := d.pose.Position.Advance(heading, d.pose.Speed)
	if !d.room.InRoom(next) {
		d.sense(true)
		return nil
	}
	d.pose.Position = next
	d.sense(false)
	return nil
}
