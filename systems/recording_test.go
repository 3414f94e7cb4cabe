package systems

import (
	"testing"
	"time"

	"github.com/automoto/ghosthand/assets"
	"github.com/automoto/ghosthand/components"
	cfg "github.com/automoto/ghosthand/config"
	"github.com/automoto/ghosthand/systems/factory"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

var scenarioSamples = []components.Sample{
	{At: time.Second, Goal: math.Vec2{X: 5, Y: 5}},
	{At: 2 * time.Second, Goal: math.Vec2{X: 10, Y: 10}},
	{At: 3 * time.Second, Goal: math.Vec2{X: 15, Y: 15}},
}

func scenarioTape() components.Tape {
	return components.Tape{
		ID:      uuid.New(),
		Samples: append([]components.Sample(nil), scenarioSamples...),
		Grabs:   []time.Duration{2 * time.Second},
	}
}

func TestRecordingCapturesScenario(t *testing.T) {
	e := newTestECS(t, time.Second)
	hand := factory.CreateHand(e, 400, 400)

	press(hand, cfg.ActionRecord)
	e.Update()
	require.True(t, hand.HasComponent(components.Recording))
	assert.Empty(t, components.Recording.Get(hand).Tape.Samples)

	for i, s := range scenarioSamples {
		components.Hand.Get(hand).Goal = s.Goal
		if i == 1 {
			press(hand, cfg.ActionGrab)
		}
		e.Update()
	}

	assert.False(t, hand.HasComponent(components.Recording))
	found := ghosts(e.World)
	require.Len(t, found, 1)

	playback := components.Playback.Get(found[0])
	assert.Equal(t, scenarioSamples, playback.Template.Samples)
	assert.Equal(t, []time.Duration{2 * time.Second}, playback.Template.Grabs)
	assert.Len(t, playback.Positions, 3)
	assert.Len(t, playback.Grabs, 1)
	assert.Equal(t, uint64(4), GetOrCreateSimulation(e).Tick)
}

func TestRecordingSampleCountAtFixedStep(t *testing.T) {
	step := time.Second / 60
	e := newTestECS(t, step)
	hand := factory.CreateHand(e, 400, 400)

	press(hand, cfg.ActionRecord)
	e.Update()

	for i := 0; i < 179; i++ {
		e.Update()
	}
	require.True(t, hand.HasComponent(components.Recording))
	assert.Len(t, components.Recording.Get(hand).Tape.Samples, 179)

	e.Update()
	require.False(t, hand.HasComponent(components.Recording))

	found := ghosts(e.World)
	require.Len(t, found, 1)
	samples := components.Playback.Get(found[0]).Template.Samples
	require.Len(t, samples, int(cfg.Record.Window/step))
	for i := 1; i < len(samples); i++ {
		assert.GreaterOrEqual(t, samples[i].At, samples[i-1].At)
	}
	assert.Equal(t, cfg.Record.Window, samples[len(samples)-1].At)
}

func TestRecordIgnoredWhileRecording(t *testing.T) {
	e := newTestECS(t, time.Second)
	hand := factory.CreateHand(e, 400, 400)

	press(hand, cfg.ActionRecord)
	e.Update()
	id := components.Recording.Get(hand).Tape.ID

	press(hand, cfg.ActionRecord)
	e.Update()
	assert.Equal(t, id, components.Recording.Get(hand).Tape.ID)
	assert.Len(t, components.Recording.Get(hand).Tape.Samples, 1)
}

func TestRecordOnlyStartsOnCurrentHand(t *testing.T) {
	e := newTestECS(t, time.Second)
	ghost := factory.CreateGhostHand(e, 100, 100, components.Tape{}, cfg.Record.Window)

	press(ghost, cfg.ActionRecord)
	StartRecordings(e)
	assert.False(t, ghost.HasComponent(components.Recording))
}

func TestRecordingKeepsGrabOnLastStep(t *testing.T) {
	e := newTestECS(t, time.Second)
	hand := factory.CreateHand(e, 400, 400)

	press(hand, cfg.ActionRecord)
	e.Update()
	e.Update()
	e.Update()
	press(hand, cfg.ActionGrab)
	e.Update()

	found := ghosts(e.World)
	require.Len(t, found, 1)
	assert.Equal(t, []time.Duration{3 * time.Second}, components.Playback.Get(found[0]).Template.Grabs)
}

func TestRecordingKeepsPickupAndDrop(t *testing.T) {
	e := newTestECS(t, time.Second, assets.Level{
		Name: "crate",
		Objects: []assets.ObjectSpawn{
			{Texture: "crate.png", X: 200, Y: 300, Width: 40, Height: 40, Grabbable: true},
		},
	})
	hand := factory.CreateHand(e, 200, 400)
	e.Update()
	crate := byTexture(e.World, "crate.png")[0]

	press(hand, cfg.ActionRecord)
	e.Update()

	press(hand, cfg.ActionGrab)
	e.Update()
	require.True(t, isHeld(crate))

	press(hand, cfg.ActionGrab)
	e.Update()
	require.True(t, isFree(crate))

	e.Update()
	found := ghosts(e.World)
	require.Len(t, found, 1)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, components.Playback.Get(found[0]).Template.Grabs)
}
