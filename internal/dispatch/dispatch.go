// Package dispatch evaluates one experiment across many rooms concurrently.
// Every room gets its own experiment seed and every trial its own room clone,
// so workers share no mutable state.
package dispatch

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"roomba/internal/catalog"
	"roomba/internal/sim"
)

// RoomResult is the outcome of the experiment in one room.
type RoomResult struct {
	Room string
	sim.Result
}

// Report collects the per-room results of a run in catalog order.
type Report struct {
	RunID  string
	Trials int
	Rooms  []RoomResult
	// Average is the mean of the per-room means.
	Average float64
}

// Runner fans an experiment out over a catalog. Run progress goes to Logger;
// per-trial entries go to Experiment.Logger when set, otherwise to Logger.
type Runner struct {
	Experiment sim.Experiment
	// Workers bounds how many rooms run at once; values below 1 mean 1.
	Workers int
	Logger  *zap.SugaredLogger
}

// Run evaluates every room of cat. The first failing room cancels the rest.
func (r Runner) Run(ctx context.Context, cat *catalog.Catalog) (Report, error) {
	log := r.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	workers := r.Workers
	if workers < 1 {
		workers = 1
	}

	report := Report{
		RunID:  uuid.NewString(),
		Trials: r.Experiment.Trials,
		Rooms:  make([]RoomResult, len(cat.Rooms)),
	}
	log = log.With("run", report.RunID)
	trialLog := log
	if r.Experiment.Logger != nil {
		trialLog = r.Experiment.Logger.With("run", report.RunID)
	}
	log.Infow("run started", "rooms", len(cat.Rooms), "trials", r.Experiment.Trials, "workers", workers)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, layout := range cat.Rooms {
		i, layout := i, layout
		g.Go(func() error {
			template, err := layout.Build()
			if err != nil {
				return err
			}
			exp := r.Experiment
			exp.Seed = r.Experiment.Seed + int64(i)
			exp.Logger = trialLog.With("room", layout.Name)
			res, err := exp.Run(ctx, template)
			if err != nil {
				return fmt.Errorf("room %q: %w", layout.Name, err)
			}
			report.Rooms[i] = RoomResult{Room: layout.Name, Result: res}
			log.Infow("room done", "room", layout.Name, "mean", res.Mean, "std", res.Std, "stalled", res.Stalled)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Errorw("run failed", "err", err)
		return Report{}, err
	}

	if len(report.Rooms) > 0 {
		total := 0.0
		for _, rr := range report.Rooms {
			total += rr.Mean
		}
		report.Average = total / float64(len(report.Rooms))
	}
	log.Infow("run finished", "average", report.Average)
	return report, nil
}
