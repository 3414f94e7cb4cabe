package factory

import (
	"github.com/automoto/ghosthand/archetypes"
	"github.com/automoto/ghosthand/assets"
	"github.com/automoto/ghosthand/components"
	"github.com/automoto/ghosthand/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel creates the level singleton over levels. Nothing is spawned
// until the first load is requested.
func CreateLevel(ecs *ecs.ECS, levels []assets.Level) *donburi.Entry {
	if len(levels) == 0 {
		panic("no levels in the level catalogue")
	}

	level := archetypes.Level.Spawn(ecs)
	components.Level.Set(level, &components.LevelData{
		Levels:     levels,
		LevelIndex: -1,
	})
	return level
}

// CreateLevelAtIndex creates the level singleton and queues a load of
// levelIndex.
func CreateLevelAtIndex(ecs *ecs.ECS, levels []assets.Level, levelIndex int) *donburi.Entry {
	level := CreateLevel(ecs, levels)
	components.Level.Get(level).RequestLoad(levelIndex)
	return level
}

// SpawnLevel despawns every joint, level object and ghost hand, then spawns
// level index from its descriptors. Out of range indices load level 0. It
// returns the index actually loaded.
func SpawnLevel(ecs *ecs.ECS, index int) int {
	w := ecs.World
	entry, ok := components.Level.First(w)
	if !ok {
		return -1
	}
	data := components.Level.Get(entry)

	if index < 0 || index >= len(data.Levels) {
		index = 0
	}

	Clear(w)

	for _, spawn := range data.Levels[index].Objects {
		CreateObject(ecs, spawn)
	}
	data.LevelIndex = index
	data.Deliveries = 0
	return index
}

// Clear tears down every joint, then removes level objects and ghost hands.
// The live hand survives with its Recording, if any.
func Clear(w donburi.World) {
	var joints []donburi.Entity
	components.Joint.Each(w, func(e *donburi.Entry) {
		joints = append(joints, e.Entity())
	})
	for _, j := range joints {
		Detach(w, j)
	}

	var doomed []*donburi.Entry
	tags.LevelObject.Each(w, func(e *donburi.Entry) {
		doomed = append(doomed, e)
	})
	for _, e := range doomed {
		DestroyObject(w, e)
	}

	doomed = doomed[:0]
	components.Playback.Each(w, func(e *donburi.Entry) {
		doomed = append(doomed, e)
	})
	for _, e := range doomed {
		DestroyHand(w, e)
	}
}
