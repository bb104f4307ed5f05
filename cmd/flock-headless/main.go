package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pb"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/simulation"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/log"
)

func main() {
	configFile := flag.String("config", "", "settings file, .json or .toml")
	schemaFile := flag.String("schema", "", "json schema for the settings file, defaults to the embedded one")
	seed := flag.Uint64("seed", 0, "spawn seed, 0 keeps the configured one")
	ticks := flag.Int("ticks", 600, "number of frames to simulate")
	flag.Parse()

	l := log.New(log.InfoLevel, os.Stdout)
	settings, err := simulation.ResolveSettings(*configFile, *schemaFile, *seed)
	if err != nil {
		l.Fatalf("💥 invalid settings: %v", err)
	}
	level, _ := simulation.ParseLogLevel(settings.LogLevel)
	l = log.New(level, os.Stdout)

	ctx := context.Background()
	system, err := actor.NewActorSystem("FlockHeadless", actor.WithLogger(l))
	if err != nil {
		l.Fatalf("💥 failed to create actor system: %v", err)
	}
	if err := system.Start(ctx); err != nil {
		l.Fatalf("💥 failed to start actor system: %v", err)
	}

	snap, elapsed, err := simulate(ctx, system, settings, *ticks)
	if stopErr := system.Stop(ctx); stopErr != nil {
		l.Errorf("💥 failed to stop actor system: %v", stopErr)
	}
	if err != nil {
		l.Fatalf("💥 %v", err)
	}

	stats := snap.GetStats()
	l.Infof("🏁 %d frames in %v, %d agents: avg speed %.3f, density %.3f, clusters %d, total distance %.1f",
		snap.GetFrame(), elapsed.Round(time.Millisecond), len(snap.GetAgents()),
		stats.GetAverageSpeed(), stats.GetAverageDensity(), stats.GetClusterCount(), stats.GetTotalDistance())
}

// simulate runs ticks frames in a fresh world and returns its final snapshot.
func simulate(ctx context.Context, system actor.ActorSystem, settings simulation.Settings, ticks int) (*pb.WorldSnapshot, time.Duration, error) {
	world, err := system.Spawn(ctx, "world", simulation.NewWorldActor(nil, settings))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to spawn world: %w", err)
	}

	// frames are paced by the configured tick rate, not the wall clock
	delta := (time.Second / time.Duration(settings.TickRate)).Nanoseconds()
	start := time.Now()
	for i := 0; i < ticks; i++ {
		if err := actor.Tell(ctx, world, &pb.Tick{DeltaTime: delta}); err != nil {
			return nil, 0, fmt.Errorf("failed to tick the world: %w", err)
		}
	}

	// the reply queues behind every tick
	reply, err := actor.Ask(ctx, world, &pb.GetSnapshot{}, time.Minute)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get the final snapshot: %w", err)
	}
	snap, ok := reply.(*pb.WorldSnapshot)
	if !ok {
		return nil, 0, fmt.Errorf("unexpected reply %T", reply)
	}
	return snap, time.Since(start), nil
}
