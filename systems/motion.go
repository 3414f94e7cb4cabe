package systems

import (
	"github.com/automoto/ghosthand/components"
	cfg "github.com/automoto/ghosthand/config"
	"github.com/automoto/ghosthand/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMotion steers every hand toward its goal with a proportional
// velocity command. Positions are left to UpdatePhysics.
func UpdateMotion(ecs *ecs.ECS) {
	tags.Hand.Each(ecs.World, func(e *donburi.Entry) {
		goal := components.Hand.Get(e).Goal
		center := components.Object.Get(e).Center()
		physics := components.Physics.Get(e)

		physics.VelX = (goal.X - center.X) * cfg.Hand.Gain
		physics.VelY = (goal.Y - center.Y) * cfg.Hand.Gain
	})
}
