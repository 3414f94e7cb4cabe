package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/ghosthand/assets"
	cfg "github.com/automoto/ghosthand/config"
	"github.com/automoto/ghosthand/systems"
	"github.com/automoto/ghosthand/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// HandScene is the playable scene: one live hand over a level, plus every
// ghost hand recorded so far.
type HandScene struct {
	ecs        *ecs.ECS
	levelIndex int
	once       sync.Once
}

// NewHandScene creates a scene that starts on levelIndex.
func NewHandScene(levelIndex int) *HandScene {
	return &HandScene{levelIndex: levelIndex}
}

func (hs *HandScene) Update() {
	hs.once.Do(hs.configure)
	hs.ecs.Update()
}

func (hs *HandScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if hs.ecs == nil {
		return
	}
	hs.ecs.Draw(screen)
}

func (hs *HandScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Live input must run before the simulation reads signals
	ecs.AddSystem(systems.UpdateInput)
	systems.RegisterSimulation(ecs)

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawObjects)
	ecs.AddRenderer(cfg.Default, systems.DrawHands)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	hs.ecs = ecs

	factory.CreateSimulation(hs.ecs, cfg.C.FixedStep())
	factory.CreateSpace(hs.ecs, cfg.C.Width, cfg.C.Height, cfg.Physics.CellSize, cfg.Physics.CellSize)
	factory.CreateLevelAtIndex(hs.ecs, assets.Levels(), hs.levelIndex)
	factory.CreateHand(hs.ecs, float64(cfg.C.Width)/2, float64(cfg.C.Height)/2)
}
