package config

import (
	"strconv"

	"roomba/internal/core"
)

// Parameters summarises the run settings for display.
func (c *Config) Parameters() core.ParameterSnapshot {
	start := c.Start
	if start == "" {
		start = "random"
	}
	body := c.Body
	if body == "" {
		body = "default"
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Robot",
			Params: []core.Parameter{
				{Key: "agent", Label: "Agent", Value: c.Agent},
				{Key: "body", Label: "Body", Value: body},
				floatParam("param", "Param", c.Param),
				floatParam("speed", "Speed", c.Speed),
				intParam("robots", "Robots", c.Robots),
				{Key: "start", Label: "Start", Value: start},
			},
		},
		{
			Name: "Trial",
			Params: []core.Parameter{
				floatParam("coverage", "Coverage", c.Coverage),
				intParam("ceiling", "Ceiling", c.Ceiling),
				{Key: "seed", Label: "Seed", Value: strconv.FormatInt(c.Seed, 10)},
			},
		},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Value: strconv.Itoa(value)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}
