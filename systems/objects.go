package systems

import (
	"github.com/automoto/ghosthand/components"
	"github.com/automoto/ghosthand/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects refreshes every collision object's cells after the step's
// moves and carries each hand's sensor along with it.
func UpdateObjects(ecs *ecs.ECS) {
	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		obj.Update()

		if !e.HasComponent(components.Hand) {
			return
		}
		sensor := components.Hand.Get(e).Sensor
		if sensor == nil {
			return
		}
		c := factory.SensorCenter(obj.Center())
		sensor.X = c.X - sensor.W/2
		sensor.Y = c.Y - sensor.H/2
		sensor.Update()
	})
}
