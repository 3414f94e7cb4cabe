package systems

import (
	"time"

	"github.com/automoto/ghosthand/components"
	cfg "github.com/automoto/ghosthand/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayback drives every ghost hand from its tape: goals from the due
// samples and a one-step Grab edge at each recorded grab time. Must run
// BEFORE UpdateGrab, which consumes the synthetic edges.
func UpdatePlayback(ecs *ecs.ECS) {
	step := stepOf(ecs)
	components.Playback.Each(ecs.World, func(e *donburi.Entry) {
		advancePlayback(
			components.Playback.Get(e),
			components.Hand.Get(e),
			components.HandInput.Get(e),
			step,
		)
	})
}

func advancePlayback(p *components.PlaybackData, hand *components.HandData, input *components.HandInputData, step time.Duration) {
	p.Timer.Tick(step)
	input.Release(cfg.ActionGrab)

	if !p.Timer.JustFinished() {
		replay(p, hand, input, p.Timer.Elapsed())
		return
	}

	// Drain the loop that just ended, then start the next one from the
	// template and catch up on whatever remainder the timer carried over.
	replay(p, hand, input, p.Timer.Duration)
	p.Rewind()
	p.Loops++
	replay(p, hand, input, p.Timer.Elapsed())
}

// replay pops every entry due at or before due.
func replay(p *components.PlaybackData, hand *components.HandData, input *components.HandInputData, due time.Duration) {
	n := 0
	for n < len(p.Positions) && p.Positions[n].At <= due {
		n++
	}
	if n > 0 {
		hand.Goal = p.Positions[n-1].Goal
		p.Positions = p.Positions[n:]
	}

	// One edge per step; a second due press waits for the next step so the
	// toggle count is kept.
	if len(p.Grabs) > 0 && p.Grabs[0] <= due && !input.JustPressed(cfg.ActionGrab) {
		input.Press(cfg.ActionGrab)
		p.Grabs = p.Grabs[1:]
	}
}
