// Command roomba-sweep evaluates an agent's tunable over a range of values and
// ranks the values by the average number of steps needed across rooms.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"sync"
	"time"

	"roomba/internal/catalog"
	"roomba/internal/config"
	"roomba/internal/dispatch"
	"roomba/internal/logging"
)

type sweepResult struct {
	param  float64
	report dispatch.Report
	err    error
}

func main() {
	cfg, err := config.Load(config.Path())
	if err != nil {
		log.Fatal(err)
	}
	cfg.Bind(flag.CommandLine)
	from := flag.Float64("from", 30, "first tunable value")
	to := flag.Float64("to", 180, "last tunable value")
	step := flag.Float64("step", 15, "tunable increment")
	top := flag.Int("top", 5, "number of results to print")
	flag.Parse()

	if !(*step > 0) || *to < *from {
		log.Fatalf("invalid sweep range from=%g to=%g step=%g", *from, *to, *step)
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	logger, flush, err := logging.New(logging.Options{Level: cfg.Log.Level, File: cfg.Log.File})
	if err != nil {
		log.Fatal(err)
	}
	defer flush()

	cat, err := catalog.Load(cfg.Catalog)
	if err != nil {
		logger.Fatalw("load catalog", "error", err)
	}
	rooms, err := cat.Select(cfg.Rooms)
	if err != nil {
		logger.Fatalw("select rooms", "error", err)
	}

	var params []float64
	for v := *from; v <= *to+1e-9; v += *step {
		params = append(params, v)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Sweeping %s over %d values (%d workers, %d trials per room)\n", cfg.Agent, len(params), workers, cfg.Trials)

	jobs := make(chan float64)
	results := make(chan sweepResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range jobs {
				results <- evaluate(ctx, *cfg, p, rooms)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		defer close(jobs)
		for _, p := range params {
			select {
			case jobs <- p:
			case <-ctx.Done():
				return
			}
		}
	}()

	start := time.Now()
	var all []sweepResult
	for res := range results {
		if res.err != nil {
			logger.Warnw("sweep value failed", "param", res.param, "error", res.err)
			continue
		}
		logger.Debugw("sweep value done", "param", res.param, "average", res.report.Average)
		all = append(all, res)
	}
	if len(all) == 0 {
		logger.Fatalw("no sweep value completed")
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].report.Average != all[j].report.Average {
			return all[i].report.Average < all[j].report.Average
		}
		return all[i].param < all[j].param
	})
	elapsed := time.Since(start)

	fmt.Printf("\nTop %d results (elapsed %s):\n", *top, elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < *top; i++ {
		res := all[i]
		fmt.Printf("%2d) param=%.2f average=%.2f rooms=%d\n", i+1, res.param, res.report.Average, len(res.report.Rooms))
	}
}

// evaluate runs the whole room set for one tunable value on a single worker.
func evaluate(ctx context.Context, cfg config.Config, param float64, rooms *catalog.Catalog) sweepResult {
	cfg.Param = param
	exp, err := cfg.Experiment()
	if err != nil {
		return sweepResult{param: param, err: err}
	}
	report, err := dispatch.Runner{Experiment: exp, Workers: 1}.Run(ctx, rooms)
	return sweepResult{param: param, report: report, err: err}
}
