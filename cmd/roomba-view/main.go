//go:build ebiten

// Command roomba-view plays one trial in a window, step by step.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"roomba/internal/app"
	"roomba/internal/catalog"
	"roomba/internal/config"
	"roomba/internal/logging"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := config.Load(config.Path())
	if err != nil {
		log.Fatal(err)
	}
	cfg.Bind(flag.CommandLine)
	roomName := flag.String("room", "", "room to show (default first selected room)")
	trial := flag.Int("trial", 0, "trial index to replay")
	flag.Parse()

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
	if len(rooms.Rooms) == 0 {
		logger.Fatalw("no rooms to show")
	}
	layout := rooms.Rooms[0]
	if *roomName != "" {
		if layout, err = cat.Get(*roomName); err != nil {
			logger.Fatalw("select room", "error", err)
		}
	}
	template, err := layout.Build()
	if err != nil {
		logger.Fatalw("build room", "room", layout.Name, "error", err)
	}

	exp, err := cfg.Experiment()
	if err != nil {
		logger.Fatalw("invalid configuration", "error", err)
	}
	scene, err := exp.Trial(layout.Name, template, *trial)
	if err != nil {
		logger.Fatalw("build trial", "error", err)
	}

	game := app.New(scene, scene.Palette(), cfg.Parameters(), cfg.UI.Scale, cfg.UI.Rate)
	w, h := app.ScreenSize(scene.Size(), cfg.UI.Scale)

	ebiten.SetWindowTitle(fmt.Sprintf("roomba - %s (%s)", layout.Name, cfg.Agent))
	ebiten.SetTPS(cfg.UI.TPS)
	ebiten.SetWindowSize(w, h)

	logger.Infow("viewer started", "room", layout.Name, "agent", cfg.Agent, "trial", *trial)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatalw("viewer stopped", "error", err)
	}
	logger.Infow("viewer closed", "steps", scene.Steps(), "coverage", scene.Coverage(), "abandoned", scene.Abandoned())
}
