package systems

import (
	"testing"
	"time"

	"github.com/automoto/ghosthand/assets"
	"github.com/automoto/ghosthand/components"
	cfg "github.com/automoto/ghosthand/config"
	"github.com/automoto/ghosthand/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

func TestPlaybackLoopsScenario(t *testing.T) {
	e := newTestECS(t, time.Second)
	tape := scenarioTape()
	ghost := factory.CreateGhostHand(e, 0, 0, tape, 3*time.Second)

	for loop := 0; loop < 3; loop++ {
		for i, s := range scenarioSamples {
			UpdatePlayback(e)

			assert.Equal(t, s.Goal, components.Hand.Get(ghost).Goal, "loop %d step %d", loop, i+1)
			assert.Equal(t, i == 1, components.HandInput.Get(ghost).JustPressed(cfg.ActionGrab), "loop %d step %d", loop, i+1)

			UpdateSignals(e)
		}
		assert.Equal(t, loop+1, components.Playback.Get(ghost).Loops)
	}
	assert.Equal(t, tape.Checksum(), components.Playback.Get(ghost).Template.Checksum())
}

func TestPlaybackRefillsQueuesAtLoopBoundary(t *testing.T) {
	e := newTestECS(t, time.Second)
	ghost := factory.CreateGhostHand(e, 0, 0, scenarioTape(), 3*time.Second)

	UpdatePlayback(e)
	UpdatePlayback(e)
	playback := components.Playback.Get(ghost)
	require.Len(t, playback.Positions, 1)
	require.Empty(t, playback.Grabs)

	// The third step drains the loop and refills it in the same step.
	UpdatePlayback(e)
	playback = components.Playback.Get(ghost)
	assert.True(t, playback.Timer.JustFinished())
	assert.Len(t, playback.Positions, len(playback.Template.Samples))
	assert.Len(t, playback.Grabs, len(playback.Template.Grabs))
	assert.Equal(t, math.Vec2{X: 15, Y: 15}, components.Hand.Get(ghost).Goal)
}

func TestPlaybackCatchesUpOnCoarseSteps(t *testing.T) {
	e := newTestECS(t, 2*time.Second)
	ghost := factory.CreateGhostHand(e, 0, 0, scenarioTape(), 3*time.Second)

	UpdatePlayback(e)
	assert.Equal(t, math.Vec2{X: 10, Y: 10}, components.Hand.Get(ghost).Goal)
	assert.True(t, components.HandInput.Get(ghost).JustPressed(cfg.ActionGrab))
	UpdateSignals(e)

	// 4s: the first loop ends at 3s and the next is 1s in.
	UpdatePlayback(e)
	assert.Equal(t, math.Vec2{X: 5, Y: 5}, components.Hand.Get(ghost).Goal)
	assert.False(t, components.HandInput.Get(ghost).JustPressed(cfg.ActionGrab))
	assert.Equal(t, 1, components.Playback.Get(ghost).Loops)
	assert.Len(t, components.Playback.Get(ghost).Positions, 2)
}

func TestPlaybackEmptyTapeIsIdle(t *testing.T) {
	e := newTestECS(t, time.Second)
	ghost := factory.CreateGhostHand(e, 100, 100, components.Tape{}, 3*time.Second)

	for i := 0; i < 10; i++ {
		e.Update()
		assert.False(t, ghost.HasComponent(components.Grabbing))
	}
	assert.Equal(t, math.Vec2{X: 100, Y: 100}, components.Hand.Get(ghost).Goal)
	assert.Equal(t, 3, components.Playback.Get(ghost).Loops)
}

func TestGhostToggleFollowsGrabParity(t *testing.T) {
	levels := []assets.Level{{
		Name: "one crate",
		Objects: []assets.ObjectSpawn{
			{Texture: "crate.png", X: 200, Y: 300, Width: 40, Height: 40, Grabbable: true},
		},
	}}
	e := newTestECS(t, time.Second, levels...)
	e.Update()

	center := math.Vec2{X: 200, Y: 400}
	tape := components.Tape{
		Samples: []components.Sample{
			{At: time.Second, Goal: center},
			{At: 2 * time.Second, Goal: center},
			{At: 3 * time.Second, Goal: center},
		},
		Grabs: []time.Duration{time.Second},
	}
	ghost := factory.CreateGhostHand(e, center.X, center.Y, tape, 3*time.Second)
	crate := byTexture(e.World, "crate.png")[0]

	// One grab per loop: picked up in the first loop, dropped in the second.
	e.Update()
	assert.True(t, ghost.HasComponent(components.Grabbing))
	assert.True(t, isHeld(crate))

	e.Update()
	e.Update()
	e.Update()
	assert.False(t, ghost.HasComponent(components.Grabbing))
	assert.True(t, isFree(crate))

	e.Update()
	e.Update()
	e.Update()
	assert.True(t, ghost.HasComponent(components.Grabbing))
}
