package core

// Size describes the dimensions of a room grid.
type Size struct {
	W int
	H int
}

// RobotMarker is a read-only view of one robot for rendering.
type RobotMarker struct {
	X, Y    float64
	Heading float64
}

// Scene is the contract a viewer drives: it advances the underlying trial one
// step at a time and reads back snapshots between steps. Viewers never mutate
// simulation state through any other path.
type Scene interface {
	Name() string
	Size() Size
	// Step advances one time step. It reports true once the trial is over.
	Step() (bool, error)
	// Abandon ends the trial early at its current step count.
	Abandon()
	// Cells returns one display value per tile in row-major order.
	Cells() []uint8
	Robots() []RobotMarker
	Steps() int
	// Ceiling is the step limit of the run.
	Ceiling() int
	Coverage() float64
}
