package archetypes

import (
	"github.com/automoto/ghosthand/components"
	cfg "github.com/automoto/ghosthand/config"
	"github.com/automoto/ghosthand/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Hand = newArchetype(
		tags.Hand,
		components.Hand,
		components.HandInput,
		components.Object,
		components.Physics,
	)
	Object = newArchetype(
		tags.LevelObject,
		components.Object,
		components.Physics,
		components.Collider,
	)
	Joint = newArchetype(
		components.Joint,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Simulation = newArchetype(
		components.Simulation,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
