package main

import (
	"context"
	"math"
	"testing"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/simulation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/log"
)

func TestSimulate_FinalStatsDescribeLastFrame(t *testing.T) {
	ctx := context.Background()
	system, err := actor.NewActorSystem("FlockHeadlessTest", actor.WithLogger(log.DiscardLogger))
	require.NoError(t, err)
	require.NoError(t, system.Start(ctx))
	t.Cleanup(func() { _ = system.Stop(ctx) })

	settings := simulation.DefaultSettings()
	settings.Seed = 21
	settings.Flock.PopulationSize = 50

	snap, _, err := simulate(ctx, system, settings, 75)
	require.NoError(t, err)
	require.Equal(t, uint64(75), snap.GetFrame())

	total := 0.0
	for _, a := range snap.GetAgents() {
		total += math.Hypot(a.GetVelocity().GetX(), a.GetVelocity().GetY())
	}
	assert.InDelta(t, total/50, snap.GetStats().GetAverageSpeed(), 1e-9)
	assert.InDelta(t, 60.0, snap.GetStats().GetFrameRate(), 1e-3)
}
