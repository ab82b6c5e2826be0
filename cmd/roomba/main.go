// Command roomba runs coverage experiments for one agent across a set of
// rooms and prints the mean and standard deviation of the steps needed.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"

	"roomba/internal/agent"
	"roomba/internal/catalog"
	"roomba/internal/config"
	"roomba/internal/dispatch"
	"roomba/internal/logging"
)

func main() {
	cfg, err := config.Load(config.Path())
	if err != nil {
		log.Fatal(err)
	}
	cfg.Bind(flag.CommandLine)
	list := flag.Bool("list", false, "list agents and rooms, then exit")
	save := flag.String("save", "", "write the effective configuration to this file, then exit")
	flag.Parse()

	if *save != "" {
		if err := cfg.Save(*save); err != nil {
			log.Fatal(err)
		}
		return
	}

	cat, err := catalog.Load(cfg.Catalog)
	if err != nil {
		log.Fatal(err)
	}
	if *list {
		printListing(cat)
		return
	}

	logger, flush, err := logging.New(logging.Options{Level: cfg.Log.Level, File: cfg.Log.File})
	if err != nil {
		log.Fatal(err)
	}
	defer flush()

	rooms, err := cat.Select(cfg.Rooms)
	if err != nil {
		logger.Fatalw("select rooms", "error", err)
	}
	exp, err := cfg.Experiment()
	if err != nil {
		logger.Fatalw("invalid configuration", "error", err)
	}
	exp.Logger = logger.Named("trial")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := dispatch.Runner{Experiment: exp, Workers: cfg.Workers, Logger: logger.Named("dispatch")}
	report, err := runner.Run(ctx, rooms)
	if err != nil {
		logger.Errorw("run failed", "error", err)
		flush()
		os.Exit(1)
	}
	fmt.Printf("agent=%s body=%s robots=%d speed=%g coverage=%g\n", cfg.Agent, cfg.Body, cfg.Robots, cfg.Speed, cfg.Coverage)
	if err := report.Write(os.Stdout); err != nil {
		logger.Fatalw("write report", "error", err)
	}
}

func printListing(cat *catalog.Catalog) {
	fmt.Println("agents:")
	for _, name := range agent.Names() {
		entry, _ := agent.Lookup(name)
		bodies := make([]string, len(entry.Bodies))
		for i, b := range entry.Bodies {
			bodies[i] = b.String()
		}
		fmt.Printf("  %-16s %-22s %s\n", name, strings.Join(bodies, ","), entry.Description)
	}
	fmt.Println("rooms:")
	for _, l := range cat.Rooms {
		fmt.Printf("  %-16s %dx%d walls=%d\n", l.Name, l.Width, l.Height, len(l.Walls))
	}
}
