package systems

import (
	"github.com/automoto/ghosthand/assets"
	"github.com/automoto/ghosthand/components"
	cfg "github.com/automoto/ghosthand/config"
	"github.com/automoto/ghosthand/logger"
	"github.com/automoto/ghosthand/systems/factory"
	"github.com/automoto/ghosthand/tags"
	"github.com/hajimehoshi/ebiten/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// GetOrCreateLevel returns the level singleton, creating it over the
// built-in catalogue on first use.
func GetOrCreateLevel(e *ecs.ECS) *components.LevelData {
	if entry, ok := components.Level.First(e.World); ok {
		return components.Level.Get(entry)
	}
	return components.Level.Get(factory.CreateLevel(e, assets.Levels()))
}

// RequestLevel queues a load of level index for the next UpdateLevel.
func RequestLevel(e *ecs.ECS, index int) {
	GetOrCreateLevel(e).RequestLoad(index)
}

// UpdateLevel turns a Reload edge into a reload of the current level and
// applies the pending load, if any.
func UpdateLevel(ecs *ecs.ECS) {
	level := GetOrCreateLevel(ecs)

	tags.CurrentHand.Each(ecs.World, func(e *donburi.Entry) {
		if components.HandInput.Get(e).JustPressed(cfg.ActionReload) {
			current := level.LevelIndex
			if current < 0 {
				current = 0
			}
			level.RequestLoad(current)
		}
	})

	if !level.PendingLoad {
		return
	}
	level.PendingLoad = false

	loaded := factory.SpawnLevel(ecs, level.PendingIndex)
	logger.L().Info("level loaded",
		zap.Int("level", loaded),
		zap.String("name", level.Levels[loaded].Name),
		zap.Int("requested", level.PendingIndex),
		zap.Uint64("tick", GetOrCreateSimulation(ecs).Tick),
	)
	if err := SaveProgress(loaded); err != nil {
		logger.L().Warn("could not save progress", zap.Error(err))
	}
}

// DrawLevel fills the screen with the level's background colour.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	current := components.Level.Get(entry).Current()
	if current == nil {
		return
	}
	bg := current.Background
	screen.Fill(colorful.Hsl(bg[0], bg[1], bg[2]).Clamped())
}
