package systems

import (
	"github.com/automoto/ghosthand/components"
	cfg "github.com/automoto/ghosthand/config"
	"github.com/automoto/ghosthand/logger"
	"github.com/automoto/ghosthand/tags"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateSubmit submits the level while the pointer is outside the play
// area: reaching the delivery quota advances to the next level. Deliveries
// reset while the pointer is inside, so only those made while the player is
// away count.
func UpdateSubmit(ecs *ecs.ECS) {
	entry, ok := tags.CurrentHand.First(ecs.World)
	if !ok {
		return
	}
	level := GetOrCreateLevel(ecs)

	if components.HandInput.Get(entry).PointerInside {
		level.Deliveries = 0
		return
	}
	if level.Deliveries < cfg.Level.DeliveryQuota {
		return
	}

	logger.L().Info("level submitted",
		zap.Int("level", level.LevelIndex),
		zap.Int("deliveries", level.Deliveries),
	)
	level.Deliveries = 0
	level.RequestLoad(level.LevelIndex + 1)
}
