// Package agent provides the built-in agent programs and a registry that
// resolves them by name.
package agent

import (
	"errors"
	"fmt"
	"sort"

	"roomba/internal/robot"
	pcore "roomba/pkg/core"
)

// ErrUnknownAgent is returned by Lookup for unregistered names.
var ErrUnknownAgent = errors.New("unknown agent")

// Factory builds a fresh agent. param is the agent's tunable (its meaning is
// agent specific) and rng is private to the robot being driven.
type Factory func(param float64, rng *pcore.RNG) robot.Agent

// Entry describes a registered agent.
type Entry struct {
	Name        string
	Description string
	// Bodies lists the capabilities the agent can drive. The first is used
	// when none is requested.
	Bodies []robot.Capability
	// Param is the default tunable.
	Param float64
	New   Factory
}

// Body resolves the capability to construct for the agent. An empty name
// selects the default.
func (e Entry) Body(name string) (robot.Capability, error) {
	if name == "" {
		return e.Bodies[0], nil
	}
	c, err := robot.ParseCapability(name)
	if err != nil {
		return 0, err
	}
	for _, b := range e.Bodies {
		if b == c {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: agent %q cannot drive a %s body", robot.ErrInvalidParameter, e.Name, c)
}

var agents = map[string]Entry{}

// Register adds an agent under e.Name.
func Register(e Entry) {
	if e.Name == "" || e.New == nil || len(e.Bodies) == 0 {
		return
	}
	agents[e.Name] = e
}

// Lookup returns the agent registered under name.
func Lookup(name string) (Entry, error) {
	e, ok := agents[name]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownAgent, name)
	}
	return e, nil
}

// Names lists registered agents alphabetically.
func Names() []string {
	names := make([]string, 0, len(agents))
	for name := range agents {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
