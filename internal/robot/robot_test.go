package robot

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomba/internal/geom"
	"roomba/internal/room"
	pcore "roomba/pkg/core"
)

func newRoom(t *testing.T, w, h int) *room.Room {
	t.Helper()
	r, err := room.New(w, h)
	require.NoError(t, err)
	return r
}

func at(x, y float64) Options {
	p := geom.Pt(x, y)
	return Options{Start: &p}
}

func TestConstructionRejectsNonPositiveSpeed(t *testing.T) {
	rm := newRoom(t, 5, 5)
	for _, c := range []Capability{Continuous, Discrete, Realistic} {
		for _, speed := range []float64{0, -1, math.NaN(), math.Inf(1)} {
			_, err := New(c, rm, speed, Options{})
			assert.ErrorIs(t, err, ErrInvalidParameter, "%v speed %v", c, speed)
		}
	}
}

func TestConstructionRejectsBlockedStart(t *testing.T) {
	rm := newRoom(t, 5, 5)
	rm.DrawWall(room.Tile{X: 2, Y: 0}, room.Tile{X: 2, Y: 4})
	_, err := NewContinuous(rm, 1, at(2.5, 2.5))
	assert.ErrorIs(t, err, ErrInvalidParameter)
	_, err = NewDiscrete(rm, 1, at(7, 1))
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestStartingPose(t *testing.T) {
	rm := newRoom(t, 6, 6)

	fixed, err := NewContinuous(rm, 1, at(1, 2))
	require.NoError(t, err)
	assert.Equal(t, geom.Pt(1, 2), fixed.Pose().Position)
	assert.Equal(t, 90.0, fixed.Pose().Heading)
	assert.Equal(t, Percept{Dirty: true}, fixed.Percept())

	random, err := NewContinuous(rm, 1, Options{RNG: pcore.NewRNG(5)})
	require.NoError(t, err)
	assert.True(t, rm.InRoom(random.Pose().Position))
	assert.Equal(t, 0.0, random.Pose().Heading)
}

func TestContinuousForward(t *testing.T) {
	rm := newRoom(t, 10, 10)
	c, err := NewContinuous(rm, 1, at(1.5, 1.5))
	require.NoError(t, err)

	require.NoError(t, c.Apply(Forward(0)))
	assert.InDelta(t, 2.5, c.Pose().Position.X, 1e-9)
	assert.InDelta(t, 1.5, c.Pose().Position.Y, 1e-9)
	assert.False(t, c.Percept().Bump)

	require.NoError(t, c.Apply(Forward(50)))
	assert.InDelta(t, 3.0, c.Pose().Position.X, 1e-9)

	require.NoError(t, c.Apply(Forward(-200)))
	assert.InDelta(t, 1.0, c.Pose().Position.X, 1e-9)
}

func TestContinuousBoundaryRefinement(t *testing.T) {
	rm := newRoom(t, 5, 5)
	c, err := NewContinuous(rm, 2, at(3.5, 2.5))
	require.NoError(t, err)

	require.NoError(t, c.Apply(Forward(0)))
	pos := c.Pose().Position
	// Four halvings of [0, 2]: 1 in, 1.5 out, 1.25 in, 1.375 in.
	assert.InDelta(t, 4.875, pos.X, 1e-9)
	assert.InDelta(t, 2.5, pos.Y, 1e-9)
	assert.True(t, rm.InRoom(pos))
	assert.True(t, c.Percept().Bump)
}

func TestContinuousBumpAgainstWallStaysInRoom(t *testing.T) {
	rm := newRoom(t, 10, 10)
	rm.DrawWall(room.Tile{X: 5, Y: 0}, room.Tile{X: 5, Y: 9})
	c, err := NewContinuous(rm, 1, at(4.2, 3.5))
	require.NoError(t, err)

	require.NoError(t, c.Apply(Forward(0)))
	assert.True(t, c.Percept().Bump)
	// 0.5 in, 0.75 in, 0.875 out, 0.8125 out.
	assert.InDelta(t, 4.95, c.Pose().Position.X, 1e-9)
	assert.True(t, rm.InRoom(c.Pose().Position))
}

func TestContinuousTurns(t *testing.T) {
	rm := newRoom(t, 10, 10)
	c, err := NewContinuous(rm, 3, at(8, 5))
	require.NoError(t, err)

	require.NoError(t, c.Apply(Forward(0)))
	require.True(t, c.Percept().Bump)

	require.NoError(t, c.Apply(TurnLeft(0)))
	assert.Equal(t, 0.0, c.Pose().Heading)
	assert.False(t, c.Percept().Bump, "turning resets bump")

	require.NoError(t, c.Apply(TurnLeft(0)))
	assert.Equal(t, 270.0, c.Pose().Heading)

	require.NoError(t, c.Apply(TurnRight(45)))
	assert.Equal(t, 315.0, c.Pose().Heading)

	require.NoError(t, c.Apply(TurnRight(405)))
	assert.Equal(t, 0.0, c.Pose().Heading)
}

func TestSuckCleansCurrentTile(t *testing.T) {
	rm := newRoom(t, 4, 4)
	c, err := NewContinuous(rm, 1, at(1.2, 1.8))
	require.NoError(t, err)
	require.True(t, c.Percept().Dirty)

	require.NoError(t, c.Apply(Suck()))
	assert.False(t, c.Percept().Dirty)
	assert.True(t, rm.IsCleaned(1, 1))
	assert.Equal(t, geom.Pt(1.2, 1.8), c.Pose().Position)
}

func TestDiscreteMoves(t *testing.T) {
	rm := newRoom(t, 5, 5)
	d, err := NewDiscrete(rm, 1, at(0, 0))
	require.NoError(t, err)

	require.NoError(t, d.Apply(West()))
	assert.Equal(t, geom.Pt(0, 0), d.Pose().Position)
	assert.True(t, d.Percept().Bump)

	require.NoError(t, d.Apply(North()))
	assert.Equal(t, geom.Pt(0, 1), d.Pose().Position)
	assert.False(t, d.Percept().Bump)

	require.NoError(t, d.Apply(East()))
	require.NoError(t, d.Apply(South()))
	assert.Equal(t, geom.Pt(1, 0), d.Pose().Position)

	require.NoError(t, d.Apply(Suck()))
	assert.True(t, rm.IsCleaned(1, 0))
	assert.False(t, d.Percept().Dirty)
}

func TestDiscreteBlockedByWall(t *testing.T) {
	rm := newRoom(t, 5, 5)
	rm.DrawWall(room.Tile{X: 2, Y: 0}, room.Tile{X: 2, Y: 4})
	d, err := NewDiscrete(rm, 1, at(1, 3))
	require.NoError(t, err)

	require.NoError(t, d.Apply(East()))
	assert.Equal(t, geom.Pt(1, 3), d.Pose().Position)
	assert.True(t, d.Percept().Bump)
	assert.True(t, d.Percept().Dirty)
}

func TestInvalidActions(t *testing.T) {
	rm := newRoom(t, 5, 5)
	c, err := NewContinuous(rm, 1, at(1, 1))
	require.NoError(t, err)
	d, err := NewDiscrete(rm, 1, at(1, 1))
	require.NoError(t, err)
	r, err := NewRealistic(rm, 1, at(1, 1))
	require.NoError(t, err)

	assert.ErrorIs(t, c.Apply(North()), ErrInvalidAction)
	assert.ErrorIs(t, c.Apply(Action{}), ErrInvalidAction)
	assert.ErrorIs(t, r.Apply(West()), ErrInvalidAction)
	assert.ErrorIs(t, d.Apply(Forward(0)), ErrInvalidAction)
	assert.ErrorIs(t, d.Apply(TurnLeft(10)), ErrInvalidAction)
	assert.ErrorIs(t, d.Apply(Action{Kind: 99}), ErrInvalidAction)
}

func TestNonFiniteAmountsRejected(t *testing.T) {
	rm := newRoom(t, 5, 5)
	nan, inf := math.NaN(), math.Inf(1)
	c, err := NewContinuous(rm, 1, at(2.5, 2.5))
	require.NoError(t, err)
	r, err := NewRealistic(rm, 1, Options{Start: at(2.5, 2.5).Start, RNG: pcore.NewRNG(3)})
	require.NoError(t, err)

	for _, a := range []Action{Forward(nan), Forward(inf), TurnLeft(inf), TurnRight(-inf), TurnLeft(nan), {Kind: ActSuck, Amount: nan}} {
		before := c.Pose()
		assert.ErrorIs(t, c.Apply(a), ErrInvalidAction, "%v", a)
		assert.Equal(t, before, c.Pose(), "%v must not move the robot", a)
		assert.ErrorIs(t, r.Apply(a), ErrInvalidAction, "%v", a)
	}
	assert.True(t, rm.InRoom(c.Pose().Position))
	assert.True(t, rm.InRoom(r.Pose().Position))
}

// regions labels every free tile with its 4-connected component.
func regions(rm *room.Room) map[room.Tile]int {
	label := map[room.Tile]int{}
	id := 0
	for x := 0; x < rm.Width(); x++ {
		for y := 0; y < rm.Height(); y++ {
			start := room.Tile{X: x, Y: y}
			if rm.IsOccupied(x, y) {
				continue
			}
			if _, seen := label[start]; seen {
				continue
			}
			label[start] = id
			stack := []room.Tile{start}
			for len(stack) > 0 {
				c := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				for _, n := range []room.Tile{{X: c.X + 1, Y: c.Y}, {X: c.X - 1, Y: c.Y}, {X: c.X, Y: c.Y + 1}, {X: c.X, Y: c.Y - 1}} {
					if n.X < 0 || n.Y < 0 || n.X >= rm.Width() || n.Y >= rm.Height() || rm.IsOccupied(n.X, n.Y) {
						continue
					}
					if _, seen := label[n]; seen {
						continue
					}
					label[n] = id
					stack = append(stack, n)
				}
			}
			id++
		}
	}
	return label
}

func TestUnitSpeedRobotsCannotCrossWalls(t *testing.T) {
	walls := [][2]room.Tile{
		{{X: 0, Y: 0}, {X: 29, Y: 29}},
		{{X: 0, Y: 4}, {X: 29, Y: 13}},
		{{X: 4, Y: 0}, {X: 13, Y: 29}},
		{{X: 0, Y: 29}, {X: 29, Y: 0}},
		{{X: 0, Y: 20}, {X: 29, Y: 9}},
		{{X: 2, Y: 0}, {X: 27, Y: 29}},
	}
	// Drive forward, turning 37 degrees left after every bump.
	bounce := AgentFunc(func(p Percept) Action {
		if p.Bump {
			return TurnLeft(37)
		}
		return Forward(0)
	})
	for _, w := range walls {
		rm := newRoom(t, 30, 30)
		rm.DrawWall(w[0], w[1])
		label := regions(rm)
		require.Len(t, uniqueValues(label), 2, "wall %v must split the room", w)

		for sx := 0; sx < 30; sx += 3 {
			for sy := 0; sy < 30; sy += 3 {
				if rm.IsOccupied(sx, sy) {
					continue
				}
				home := label[room.Tile{X: sx, Y: sy}]
				for heading := 0; heading < 360; heading += 7 {
					body, err := NewContinuous(rm, 1, at(float64(sx)+0.5, float64(sy)+0.5))
					require.NoError(t, err)
					require.NoError(t, body.Apply(TurnLeft(float64(90-heading)+360)))
					r := &Robot{Body: body, Agent: bounce}
					for step := 0; step < 60; step++ {
						require.NoError(t, r.Step())
						x, y := r.Pose().Position.Tile()
						if !assert.Equal(t, home, label[room.Tile{X: x, Y: y}],
							"wall %v: robot from (%d,%d) heading %d crossed at step %d", w, sx, sy, heading, step) {
							return
						}
					}
				}
			}
		}
	}
}

func uniqueValues(m map[room.Tile]int) map[int]bool {
	out := map[int]bool{}
	for _, v := range m {
		out[v] = true
	}
	return out
}

func TestRealisticDrift(t *testing.T) {
	rm := newRoom(t, 20, 20)
	body, err := NewRealistic(rm, 1, Options{Start: at(5, 5).Start, RNG: pcore.NewRNG(11)})
	require.NoError(t, err)

	lean := body.Lean()
	assert.GreaterOrEqual(t, lean, -LeanMax)
	assert.Less(t, lean, LeanMax)

	prev := body.Pose().Heading
	for i := 0; i < 200; i++ {
		require.NoError(t, body.Apply(Suck()))
		h := body.Pose().Heading
		delta := geom.WrapHeading(h - prev - lean)
		marble := delta < MarbleMax && delta >= 0
		assert.True(t, marble || math.Abs(delta-360) < 1e-9 || delta < 1e-9,
			"step %d: heading moved by %v beyond lean %v", i, h-prev, lean)
		assert.GreaterOrEqual(t, h, 0.0)
		assert.Less(t, h, 360.0)
		prev = h
	}
}

func TestRealisticDeterministicForSeed(t *testing.T) {
	run := func() []Pose {
		rm := newRoom(t, 15, 15)
		b, err := NewRealistic(rm, 1, Options{RNG: pcore.NewRNG(99)})
		require.NoError(t, err)
		var poses []Pose
		for i := 0; i < 100; i++ {
			a := Forward(0)
			if b.Percept().Bump {
				a = TurnLeft(37)
			}
			require.NoError(t, b.Apply(a))
			poses = append(poses, b.Pose())
		}
		return poses
	}
	assert.Equal(t, run(), run())
}

func TestRobotStep(t *testing.T) {
	rm := newRoom(t, 3, 3)
	body, err := NewDiscrete(rm, 1, at(0, 0))
	require.NoError(t, err)

	var seen []Percept
	r := &Robot{Body: body, Agent: AgentFunc(func(p Percept) Action {
		seen = append(seen, p)
		if p.Dirty {
			return Suck()
		}
		return East()
	})}
	for i := 0; i < 4; i++ {
		require.NoError(t, r.Step())
	}
	assert.Equal(t, []Percept{{Dirty: true}, {}, {Dirty: true}, {}}, seen)
	assert.Equal(t, geom.Pt(2, 0), r.Pose().Position)
}

func TestParseActionKind(t *testing.T) {
	k, err := ParseActionKind("turnleft")
	require.NoError(t, err)
	assert.Equal(t, ActTurnLeft, k)

	_, err = ParseActionKind("Reverse")
	assert.ErrorIs(t, err, ErrInvalidAction)
}

func TestParseCapability(t *testing.T) {
	c, err := ParseCapability("realistic")
	require.NoError(t, err)
	assert.Equal(t, Realistic, c)
	_, err = ParseCapability("hover")
	assert.ErrorIs(t, err, ErrInvalidParameter)
}
