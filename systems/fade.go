package systems

import (
	"github.com/automoto/ghosthand/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFades advances ghost fade-in tweens by one step.
func UpdateFades(ecs *ecs.ECS) {
	dt := float32(stepOf(ecs).Seconds())
	components.Fade.Each(ecs.World, func(e *donburi.Entry) {
		fade := components.Fade.Get(e)
		if fade.Tween == nil {
			return
		}
		alpha, done := fade.Tween.Update(dt)
		fade.Alpha = alpha
		if done {
			fade.Tween = nil
		}
	})
}
