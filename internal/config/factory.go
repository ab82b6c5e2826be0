package config

import (
	"roomba/internal/agent"
	"roomba/internal/robot"
	"roomba/internal/room"
	"roomba/internal/sim"
	pcore "roomba/pkg/core"
)

// Factory resolves the configured agent and body into a robot factory.
func (c *Config) Factory() (sim.RobotFactory, error) {
	entry, err := agent.Lookup(c.Agent)
	if err != nil {
		return nil, err
	}
	body, err := entry.Body(c.Body)
	if err != nil {
		return nil, err
	}
	start, err := c.StartPoint()
	if err != nil {
		return nil, err
	}
	param := c.Param
	if param == 0 {
		param = entry.Param
	}
	speed := c.Speed
	return func(rm *room.Room, rng *pcore.RNG) (*robot.Robot, error) {
		b, err := robot.New(body, rm, speed, robot.Options{Start: start, RNG: rng})
		if err != nil {
			return nil, err
		}
		return &robot.Robot{Body: b, Agent: entry.New(param, rng)}, nil
	}, nil
}

// Experiment builds the experiment described by the configuration.
func (c *Config) Experiment() (sim.Experiment, error) {
	if err := c.Validate(); err != nil {
		return sim.Experiment{}, err
	}
	factory, err := c.Factory()
	if err != nil {
		return sim.Experiment{}, err
	}
	return sim.Experiment{
		Trials:   c.Trials,
		Robots:   c.Robots,
		Coverage: c.Coverage,
		Ceiling:  c.Ceiling,
		Seed:     c.Seed,
		Factory:  factory,
	}, nil
}
