package main

import (
	"context"
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/gui"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/simulation"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/log"
)

func main() {
	configFile := flag.String("config", "", "settings file, .json or .toml")
	schemaFile := flag.String("schema", "", "json schema for the settings file, defaults to the embedded one")
	seed := flag.Uint64("seed", 0, "spawn seed, 0 keeps the configured one")
	flag.Parse()

	l := log.New(log.InfoLevel, os.Stdout)
	settings, err := simulation.ResolveSettings(*configFile, *schemaFile, *seed)
	if err != nil {
		l.Fatalf("💥 invalid settings: %v", err)
	}
	level, _ := simulation.ParseLogLevel(settings.LogLevel)
	l = log.New(level, os.Stdout)

	ctx := context.Background()
	system, err := actor.NewActorSystem("FlockWorld", actor.WithLogger(l))
	if err != nil {
		l.Fatalf("💥 failed to create actor system: %v", err)
	}
	if err := system.Start(ctx); err != nil {
		l.Fatalf("💥 failed to start actor system: %v", err)
	}

	err = runGame(ctx, system, settings)
	if stopErr := system.Stop(ctx); stopErr != nil {
		l.Errorf("💥 failed to stop actor system: %v", stopErr)
	}
	if err != nil {
		l.Fatalf("💥 simulation stopped: %v", err)
	}
}

func runGame(ctx context.Context, system actor.ActorSystem, settings simulation.Settings) error {
	game, err := gui.NewGame(ctx, system, settings)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(int(settings.WorldWidth), int(settings.WorldHeight))
	ebiten.SetWindowTitle("Flock Simulation")
	ebiten.SetTPS(settings.TickRate)
	return ebiten.RunGame(game)
}
