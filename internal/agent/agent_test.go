package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomba/internal/geom"
	"roomba/internal/robot"
	"roomba/internal/room"
	pcore "roomba/pkg/core"
)

func TestReflexDecisions(t *testing.T) {
	r := &Reflex{Degrees: 91}
	cases := []struct {
		name string
		in   robot.Percept
		want robot.Action
	}{
		{"bump wins over dirt", robot.Percept{Bump: true, Dirty: true}, robot.TurnLeft(91)},
		{"dirty", robot.Percept{Dirty: true}, robot.Suck()},
		{"clear", robot.Percept{}, robot.Forward(0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, r.Decide(tc.in))
		})
	}
}

func TestRandomReflexTurnRange(t *testing.T) {
	r := &RandomReflex{rng: pcore.NewRNG(4)}
	for i := 0; i < 200; i++ {
		a := r.Decide(robot.Percept{Bump: true})
		require.Equal(t, robot.ActTurnLeft, a.Kind)
		assert.GreaterOrEqual(t, a.Amount, 45.0)
		assert.Less(t, a.Amount, 55.0)
	}
}

func TestReflexStatePatience(t *testing.T) {
	r := &ReflexState{Patience: 5}
	for i := 0; i < 5; i++ {
		assert.Equal(t, robot.Forward(0), r.Decide(robot.Percept{}), "move %d", i)
	}
	assert.Equal(t, robot.TurnLeft(45), r.Decide(robot.Percept{}))
	assert.Equal(t, robot.Forward(0), r.Decide(robot.Percept{}))
	assert.Equal(t, robot.Suck(), r.Decide(robot.Percept{Dirty: true}))
	assert.Equal(t, robot.TurnLeft(95), r.Decide(robot.Percept{Bump: true}))
}

func TestRandomDiscreteStaysInVocabulary(t *testing.T) {
	rm, err := room.New(4, 4)
	require.NoError(t, err)
	start := geom.Pt(1, 1)
	body, err := robot.NewDiscrete(rm, 1, robot.Options{Start: &start})
	require.NoError(t, err)

	a := &RandomDiscrete{rng: pcore.NewRNG(8)}
	for i := 0; i < 500; i++ {
		require.NoError(t, body.Apply(a.Decide(body.Percept())))
	}
}

func TestSweeperCleansEmptyRoom(t *testing.T) {
	rm, err := room.New(4, 3)
	require.NoError(t, err)
	start := geom.Pt(0, 0)
	body, err := robot.NewDiscrete(rm, 1, robot.Options{Start: &start})
	require.NoError(t, err)
	r := &robot.Robot{Body: body, Agent: NewSweeper()}

	steps := 0
	for ; steps < 100; steps++ {
		if total, cleaned := rm.Coverage(); cleaned == total {
			break
		}
		require.NoError(t, r.Step())
	}
	// 12 sucks, 11 moves and two bumps at the row ends.
	assert.Equal(t, 25, steps)
}

func TestSweeperReversesAtTop(t *testing.T) {
	s := NewSweeper()
	assert.Equal(t, robot.East(), s.Decide(robot.Percept{}))
	assert.Equal(t, robot.North(), s.Decide(robot.Percept{Bump: true}))
	assert.Equal(t, robot.West(), s.Decide(robot.Percept{Bump: true}))
	assert.Equal(t, robot.South(), s.Decide(robot.Percept{Bump: true}))
}

func TestRegistry(t *testing.T) {
	assert.Equal(t, []string{"random-discrete", "random-reflex", "reflex", "reflex-state", "sweeper"}, Names())

	e, err := Lookup("reflex")
	require.NoError(t, err)
	assert.Equal(t, 90.0, e.Param)
	body, err := e.Body("")
	require.NoError(t, err)
	assert.Equal(t, robot.Continuous, body)
	body, err = e.Body("realistic")
	require.NoError(t, err)
	assert.Equal(t, robot.Realistic, body)
	_, err = e.Body("discrete")
	assert.ErrorIs(t, err, robot.ErrInvalidParameter)

	_, err = Lookup("astar")
	assert.ErrorIs(t, err, ErrUnknownAgent)
}
