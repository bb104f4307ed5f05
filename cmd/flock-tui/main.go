package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/simulation"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/tui"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/log"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "flock-tui: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configFile := flag.String("config", "", "settings file, .json or .toml")
	schemaFile := flag.String("schema", "", "json schema for the settings file, defaults to the embedded one")
	seed := flag.Uint64("seed", 0, "spawn seed, 0 keeps the configured one")
	logFile := flag.String("log", "", "write logs to this file, the terminal is busy drawing")
	flag.Parse()

	settings, err := simulation.ResolveSettings(*configFile, *schemaFile, *seed)
	if err != nil {
		return err
	}

	var logger log.Logger = log.DiscardLogger
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		level, _ := simulation.ParseLogLevel(settings.LogLevel)
		logger = log.New(level, f)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	system, err := actor.NewActorSystem("FlockWorld", actor.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to create actor system: %w", err)
	}
	if err := system.Start(ctx); err != nil {
		return fmt.Errorf("failed to start actor system: %w", err)
	}
	defer system.Stop(context.Background())

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialise screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	viewer, err := tui.NewViewer(ctx, system, screen, settings)
	if err != nil {
		return err
	}
	return viewer.Run(ctx)
}
