package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"

	"lifelike/internal/app"
	"lifelike/internal/term"
	"lifelike/pkg/core"
	_ "lifelike/pkg/sims/colorlife"
	_ "lifelike/pkg/sims/life"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: lifelike [flags]\n\nautomata: %s\n\n", strings.Join(core.Names(), ", "))
		flag.PrintDefaults()
	}
	flag.Parse()

	logger, closer, err := cfg.Logger()
	if err != nil {
		log.Fatal(err)
	}
	defer closer.Close()
	logger.Info("application starting", "sim", cfg.Sim, "rule", cfg.Rule, "gui", cfg.GUI)
	obs := core.LogObserver(logger)

	if cfg.GUI {
		sim, err := cfg.Build(app.DefaultSize(), obs)
		if err != nil {
			log.Fatal(err)
		}
		if err := app.Run(sim, cfg); err != nil {
			log.Fatal(err)
		}
		return
	}

	palette, err := cfg.PaletteValue()
	if err != nil {
		log.Fatal(err)
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	sim, err := cfg.Build(term.FitSize(screen), obs)
	if err != nil {
		screen.Fini()
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = term.New(screen, sim, palette, cfg.TPS, cfg.Seed).Run(ctx)
	screen.Fini()
	if err != nil && ctx.Err() == nil {
		log.Fatal(err)
	}
	logger.Info("application stopped", "generation", sim.Generation(), "population", sim.Population())
}
