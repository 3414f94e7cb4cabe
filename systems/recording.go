package systems

import (
	"github.com/automoto/ghosthand/components"
	cfg "github.com/automoto/ghosthand/config"
	"github.com/automoto/ghosthand/logger"
	"github.com/automoto/ghosthand/systems/factory"
	"github.com/automoto/ghosthand/tags"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateRecording advances every active recording and samples the hand's
// goal, including on the step that completes the window.
func UpdateRecording(ecs *ecs.ECS) {
	step := stepOf(ecs)
	components.Recording.Each(ecs.World, func(e *donburi.Entry) {
		rec := components.Recording.Get(e)
		if rec.Timer.Finished() {
			return
		}
		rec.Timer.Tick(step)
		rec.Tape.Samples = append(rec.Tape.Samples, components.Sample{
			At:   rec.Timer.Elapsed(),
			Goal: components.Hand.Get(e).Goal,
		})
	})
}

// FinalizeRecordings turns every completed recording into a ghost hand.
// Must run AFTER UpdateGrab so a grab on the last step is kept.
func FinalizeRecordings(ecs *ecs.ECS) {
	var done []*donburi.Entry
	components.Recording.Each(ecs.World, func(e *donburi.Entry) {
		if components.Recording.Get(e).Timer.Finished() {
			done = append(done, e)
		}
	})

	for _, e := range done {
		rec := components.Recording.Get(e)
		tape := rec.Tape.Clone()
		window := rec.Timer.Duration
		e.RemoveComponent(components.Recording)

		center := components.Object.Get(e).Center()
		factory.CreateGhostHand(ecs, center.X, center.Y, tape, window)

		logger.L().Info("recording finished",
			zap.Stringer("tape", tape.ID),
			zap.Uint64("tick", GetOrCreateSimulation(ecs).Tick),
			zap.Int("samples", len(tape.Samples)),
			zap.Int("grabs", len(tape.Grabs)),
		)
	}
}

// StartRecordings attaches a fresh recording to the current hand on a
// Record edge. A hand already recording, or a ghost, is left alone.
func StartRecordings(ecs *ecs.ECS) {
	var starting []*donburi.Entry
	tags.CurrentHand.Each(ecs.World, func(e *donburi.Entry) {
		if !components.HandInput.Get(e).JustPressed(cfg.ActionRecord) {
			return
		}
		if e.HasComponent(components.Recording) || e.HasComponent(components.Playback) {
			logger.L().Debug("record ignored, hand busy")
			return
		}
		starting = append(starting, e)
	})

	for _, e := range starting {
		StartRecording(e)
	}
}

// StartRecording attaches an empty recording with a zeroed clock to hand.
func StartRecording(hand *donburi.Entry) {
	hand.AddComponent(components.Recording)
	components.Recording.SetValue(hand, components.RecordingData{
		Timer: components.NewTimer(cfg.Record.Window, components.TimerOnce),
		Tape:  components.Tape{ID: uuid.New()},
	})
	logger.L().Info("recording started",
		zap.Stringer("tape", components.Recording.Get(hand).Tape.ID),
		zap.Duration("window", cfg.Record.Window),
	)
}
