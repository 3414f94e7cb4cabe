package systems

import (
	"github.com/automoto/ghosthand/components"
	cfg "github.com/automoto/ghosthand/config"
	"github.com/automoto/ghosthand/logger"
	"github.com/automoto/ghosthand/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateInput polls devices into the current hand's HandInput and moves its
// goal under the cursor. Must run BEFORE RegisterSimulation's systems.
func UpdateInput(ecs *ecs.ECS) {
	entry, ok := tags.CurrentHand.First(ecs.World)
	if !ok {
		return
	}
	input := components.HandInput.Get(entry)

	for actionID, binding := range cfg.Input.Bindings {
		down := isDown(binding)
		if down && !input.Held[actionID] {
			input.Press(actionID)
			logger.L().Debug("press", zap.Stringer("action", actionID))
		}
		input.Held[actionID] = down
	}

	cx, cy := ebiten.CursorPosition()
	input.PointerInside = ebiten.IsFocused() &&
		cx >= 0 && cy >= 0 && cx < cfg.C.Width && cy < cfg.C.Height
	if !input.PointerInside {
		return
	}

	// The sensor, not the hand body, sits under the pointer.
	hand := components.Hand.Get(entry)
	hand.Goal.X = float64(cx) - cfg.Hand.SensorOffsetX
	hand.Goal.Y = float64(cy) - cfg.Hand.SensorOffsetY
}

func isDown(binding cfg.InputBinding) bool {
	for _, key := range binding.Keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	for _, btn := range binding.MouseButtons {
		if ebiten.IsMouseButtonPressed(btn) {
			return true
		}
	}
	return false
}
