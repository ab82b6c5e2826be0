package robot

import (
	"roomba/internal/geom"
	"roomba/internal/room"
	pcore "roomba/pkg/core"
)

const (
	// LeanMax bounds the constant per-step heading drift, in degrees.
	LeanMax = 0.1
	// MarbleProbability is the per-step chance of losing traction.
	MarbleProbability = 0.01
	// MarbleMax bounds the heading kick of a marble hit, in degrees.
	MarbleMax = 10.0
)

// RealisticBody is a continuous robot whose heading drifts by a fixed lean
// after every action and is occasionally knocked off course.
type RealisticBody struct {
	*ContinuousBody
	lean float64
	rng  *pcore.RNG
}

// NewRealistic places a realistic robot in rm. The lean is drawn once from
// [-LeanMax, LeanMax).
func NewRealistic(rm *room.Room, speed float64, opts Options) (*RealisticBody, error) {
	if opts.RNG == nil {
		opts.RNG = pcore.NewRNG(0)
	}
	c, err := NewContinuous(rm, speed, opts)
	if err != nil {
		return nil, err
	}
	return &RealisticBody{
		ContinuousBody: c,
		lean:           opts.RNG.Uniform(-LeanMax, LeanMax),
		rng:            opts.RNG,
	}, nil
}

// Capability reports Realistic.
func (r *RealisticBody) Capability() Capability { return Realistic }

// Lean returns the robot's constant heading drift.
func (r *RealisticBody) Lean() float64 { return r.lean }

// Apply executes the action as a continuous robot would, then perturbs the
// heading.
func (r *RealisticBody) Apply(a Action) error {
	if err := r.ContinuousBody.Apply(a); err != nil {
		return err
	}
	heading := r.pose.Heading + r.lean
	if r.rng.Chance(MarbleProbability) {
		heading += r.rng.Uniform(0, MarbleMax)
	}
	r.pose.Heading = geom.WrapHeading(heading)
	return nil
}
