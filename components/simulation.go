package components

import (
	"time"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SimulationData is the singleton fixed-step clock.
type SimulationData struct {
	Step time.Duration // duration of one fixed step
	Tick uint64        // steps completed
}

var Simulation = donburi.NewComponentType[SimulationData]()

// FadeData animates a ghost hand's overlay alpha after it spawns.
type FadeData struct {
	Tween *gween.Tween
	Alpha float32
}

var Fade = donburi.NewComponentType[FadeData]()
