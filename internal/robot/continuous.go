package robot

import (
	"fmt"
	"math"

	"roomba/internal/geom"
	"roomba/internal/room"
)

// RefinementSteps is how many times Forward halves the search interval when a
// full step would leave the room.
const RefinementSteps = 4

const (
	defaultTurn    = 90.0
	defaultForward = 100.0
)

// ContinuousBody turns by arbitrary angles and moves along its heading.
type ContinuousBody struct {
	base
}

// NewContinuous places a continuous robot in rm.
func NewContinuous(rm *room.Room, speed float64, opts Options) (*ContinuousBody, error) {
	b, err := newBase(rm, speed, opts)
	if err != nil {
		return nil, err
	}
	return &ContinuousBody{base: b}, nil
}

// Capability reports Continuous.
func (c *ContinuousBody) Capability() Capability { return Continuous }

// Apply executes one action.
func (c *ContinuousBody) Apply(a Action) error {
	if math.IsNaN(a.Amount) || math.IsInf(a.Amount, 0) {
		return fmt.Errorf("%w: %v has a non-finite amount", ErrInvalidAction, a)
	}
	switch a.Kind {
	case ActTurnLeft:
		c.turn(-orDefault(a.Amount, defaultTurn))
	case ActTurnRight:
		c.turn(orDefault(a.Amount, defaultTurn))
	case ActForward:
		c.forward(c.pose.Speed * orDefault(a.Amount, defaultForward) / 100)
	case ActSuck:
		c.suck()
	default:
		return fmt.Errorf("%w: %v is not a continuous action", ErrInvalidAction, a)
	}
	return nil
}

func (c *ContinuousBody) turn(deg float64) {
	c.pose.Heading = geom.WrapHeading(c.pose.Heading + deg)
	c.sense(false)
}

// forward commits the full move when it stays in the room. Otherwise it
// binary-searches the distance along the heading and stops at the farthest
// in-room point found, reporting a bump.
func (c *ContinuousBody) forward(dist float64) {
	pos, heading := c.pose.Position, c.pose.Heading
	if next := pos.Advance(heading, dist); c.room.InRoom(next) {
		c.pose.Position = next
		c.sense(false)
		return
	}
	lo, hi := 0.0, dist
	for i := 0; i < RefinementSteps; i++ {
		mid := lo + (hi-lo)/2
		if c.room.InRoom(pos.Advance(heading, mid)) {
			lo = mid
		} else {
			hi = mid
		}
	}
	c.pose.Position = pos.Advance(heading, lo)
	c.sense(true)
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
