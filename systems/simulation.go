package systems

import (
	"time"

	"github.com/automoto/ghosthand/components"
	cfg "github.com/automoto/ghosthand/config"
	"github.com/automoto/ghosthand/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RegisterSimulation adds the fixed-step hand systems in their run order.
// Live device polling (UpdateInput) is registered separately, before these.
func RegisterSimulation(ecs *ecs.ECS) {
	ecs.AddSystem(UpdatePlayback)
	ecs.AddSystem(UpdateRecording)
	ecs.AddSystem(UpdateGrab)
	ecs.AddSystem(FinalizeRecordings)
	ecs.AddSystem(StartRecordings)
	ecs.AddSystem(UpdateMotion)
	ecs.AddSystem(UpdatePhysics)
	ecs.AddSystem(UpdateJoints)
	ecs.AddSystem(UpdateObjects)
	ecs.AddSystem(UpdateCollectors)
	ecs.AddSystem(PruneJoints)
	ecs.AddSystem(UpdateSubmit)
	ecs.AddSystem(UpdateLevel)
	ecs.AddSystem(UpdateFades)
	ecs.AddSystem(UpdateSignals)
}

// GetOrCreateSimulation returns the fixed-step clock, creating it with the
// configured step on first use.
func GetOrCreateSimulation(e *ecs.ECS) *components.SimulationData {
	if entry, ok := components.Simulation.First(e.World); ok {
		return components.Simulation.Get(entry)
	}
	return components.Simulation.Get(factory.CreateSimulation(e, cfg.C.FixedStep()))
}

func stepOf(e *ecs.ECS) time.Duration {
	return GetOrCreateSimulation(e).Step
}

// UpdateSignals clears every hand's action edges and advances the clock.
// Must run last.
func UpdateSignals(e *ecs.ECS) {
	components.HandInput.Each(e.World, func(entry *donburi.Entry) {
		components.HandInput.Get(entry).ClearSignals()
	})
	GetOrCreateSimulation(e).Tick++
}
