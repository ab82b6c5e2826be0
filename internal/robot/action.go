package robot

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidAction reports an action outside the vocabulary of a robot's
// capability set. It signals a bug in the agent and aborts the trial.
var ErrInvalidAction = errors.New("invalid action")

// ActionKind names a robot command.
type ActionKind uint8

const (
	ActNone ActionKind = iota
	// Continuous vocabulary.
	ActTurnLeft
	ActTurnRight
	ActForward
	// Shared by both vocabularies.
	ActSuck
	// Discrete vocabulary.
	ActNorth
	ActSouth
	ActEast
	ActWest
)

var actionNames = map[ActionKind]string{
	ActTurnLeft:  "TurnLeft",
	ActTurnRight: "TurnRight",
	ActForward:   "Forward",
	ActSuck:      "Suck",
	ActNorth:     "North",
	ActSouth:     "South",
	ActEast:      "East",
	ActWest:      "West",
}

func (k ActionKind) String() string {
	if name, ok := actionNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ActionKind(%d)", uint8(k))
}

// ParseActionKind resolves an action name case-insensitively.
func ParseActionKind(name string) (ActionKind, error) {
	for k, n := range actionNames {
		if strings.EqualFold(n, name) {
			return k, nil
		}
	}
	return ActNone, fmt.Errorf("%w: unknown action %q", ErrInvalidAction, name)
}

// Action is one command for a robot. Amount is the turn in degrees for turns
// and the percentage of full speed for Forward; zero selects the default (90
// degrees, 100 percent). Other kinds ignore it.
type Action struct {
	Kind   ActionKind
	Amount float64
}

func (a Action) String() string {
	if a.Amount != 0 {
		return fmt.Sprintf("%s(%g)", a.Kind, a.Amount)
	}
	return a.Kind.String()
}

// TurnLeft rotates counter-clockwise by deg degrees (0 for the default 90).
func TurnLeft(deg float64) Action { return Action{Kind: ActTurnLeft, Amount: deg} }

// TurnRight rotates clockwise by deg degrees (0 for the default 90).
func TurnRight(deg float64) Action { return Action{Kind: ActTurnRight, Amount: deg} }

// Forward moves pct percent of full speed along the heading (0 for 100).
func Forward(pct float64) Action { return Action{Kind: ActForward, Amount: pct} }

// Suck cleans the tile under the robot.
func Suck() Action { return Action{Kind: ActSuck} }

func North() Action { return Action{Kind: ActNorth} }
func South() Action { return Action{Kind: ActSouth} }
func East() Action  { return Action{Kind: ActEast} }
func West() Action  { return Action{Kind: ActWest} }
