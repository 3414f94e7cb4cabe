package factory

import (
	"time"

	"github.com/automoto/ghosthand/archetypes"
	"github.com/automoto/ghosthand/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.Set(space, &components.SpaceData{
		Space: resolv.NewSpace(width, height, cellWidth, cellHeight),
	})
	return space
}

// SpaceOf returns the world's collision space, or nil before one is created.
func SpaceOf(w donburi.World) *resolv.Space {
	entry, ok := components.Space.First(w)
	if !ok {
		return nil
	}
	return components.Space.Get(entry).Space
}

func addToSpace(w donburi.World, objs ...*resolv.Object) {
	if space := SpaceOf(w); space != nil {
		space.Add(objs...)
	}
}

func removeFromSpace(w donburi.World, objs ...*resolv.Object) {
	space := SpaceOf(w)
	if space == nil {
		return
	}
	for _, obj := range objs {
		if obj != nil && obj.Space != nil {
			space.Remove(obj)
		}
	}
}

// CreateSimulation creates the fixed-step clock singleton.
func CreateSimulation(ecs *ecs.ECS, step time.Duration) *donburi.Entry {
	sim := archetypes.Simulation.Spawn(ecs)
	components.Simulation.SetValue(sim, components.SimulationData{Step: step})
	return sim
}
