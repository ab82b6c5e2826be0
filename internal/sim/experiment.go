package sim

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"roomba/internal/robot"
	"roomba/internal/room"
	pcore "roomba/pkg/core"
)

// RobotFactory builds one robot in rm. rng is private to the trial.
type RobotFactory func(rm *room.Room, rng *pcore.RNG) (*robot.Robot, error)

// Experiment repeats independent trials of the same setup.
type Experiment struct {
	Trials   int
	Robots   int
	Coverage float64
	// Ceiling bounds each trial; zero selects DefaultStepCeiling.
	Ceiling int
	// Seed makes the experiment reproducible. Trial i draws from stream i.
	Seed    int64
	Factory RobotFactory
	Logger  *zap.SugaredLogger
}

// Result summarises an experiment.
type Result struct {
	Mean  float64
	Std   float64
	Steps []int
	// Stalled counts trials that hit the step ceiling without reaching the
	// coverage target.
	Stalled int
}

// Run executes every trial on its own clone of template. The context is
// checked between trials.
func (e Experiment) Run(ctx context.Context, template *room.Room) (Result, error) {
	if e.Factory == nil {
		return Result{}, fmt.Errorf("%w: nil robot factory", robot.ErrInvalidParameter)
	}
	if e.Trials <= 0 || e.Robots <= 0 {
		return Result{}, fmt.Errorf("%w: need positive trials and robots, got %d and %d",
			robot.ErrInvalidParameter, e.Trials, e.Robots)
	}
	log := e.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	res := Result{Steps: make([]int, 0, e.Trials)}
	for i := 0; i < e.Trials; i++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		t, err := e.Trial("", template, i)
		if err != nil {
			return res, err
		}
		for !t.Done() {
			if _, err := t.Step(); err != nil {
				return res, fmt.Errorf("trial %d: %w", i, err)
			}
		}
		if !t.Covered() {
			res.Stalled++
		}
		res.Steps = append(res.Steps, t.Steps())
		log.Debugw("trial finished", "trial", i, "steps", t.Steps(), "coverage", t.Coverage())
	}
	res.Mean, res.Std = Aggregate(res.Steps)
	return res, nil
}

// Trial builds trial i of the experiment on a fresh clone of template. Run
// plays the same trials, so a viewer can replay any of them step by step.
func (e Experiment) Trial(name string, template *room.Room, i int) (*Trial, error) {
	if e.Factory == nil {
		return nil, fmt.Errorf("%w: nil robot factory", robot.ErrInvalidParameter)
	}
	rm := template.Clone()
	rng := pcore.Derive(e.Seed, i)
	robots := make([]*robot.Robot, 0, e.Robots)
	for j := 0; j < e.Robots; j++ {
		r, err := e.Factory(rm, rng)
		if err != nil {
			return nil, fmt.Errorf("trial %d: robot %d: %w", i, j, err)
		}
		robots = append(robots, r)
	}
	return NewTrial(name, rm, robots, e.Coverage, e.Ceiling), nil
}

// RunExperiment runs trials of a single robot per trial with the default
// ceiling and returns the mean and standard deviation of their step counts.
func RunExperiment(ctx context.Context, trials int, factory RobotFactory, template *room.Room, coverage float64) (mean, std float64, err error) {
	res, err := Experiment{
		Trials:   trials,
		Robots:   1,
		Coverage: coverage,
		Factory:  factory,
	}.Run(ctx, template)
	if err != nil {
		return 0, 0, err
	}
	return res.Mean, res.Std, nil
}
