package systems

import (
	"testing"
	"time"

	"github.com/automoto/ghosthand/assets"
	"github.com/automoto/ghosthand/components"
	cfg "github.com/automoto/ghosthand/config"
	"github.com/automoto/ghosthand/systems/factory"
	"github.com/automoto/ghosthand/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

// newTestECS builds a headless world running the simulation systems with the
// given step. If levels are given, level 0 is loaded by the first Update.
func newTestECS(t *testing.T, step time.Duration, levels ...assets.Level) *ecs.ECS {
	t.Helper()

	window, level := cfg.Record.Window, cfg.Level
	t.Cleanup(func() {
		cfg.Record.Window, cfg.Level = window, level
	})
	cfg.Record.Window = 3 * time.Second

	e := ecs.NewECS(donburi.NewWorld())
	RegisterSimulation(e)
	factory.CreateSimulation(e, step)
	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, 16, 16)
	if len(levels) == 0 {
		factory.CreateLevel(e, []assets.Level{{Name: "empty"}})
	} else {
		factory.CreateLevelAtIndex(e, levels, 0)
	}
	return e
}

func press(hand *donburi.Entry, id cfg.ActionID) {
	components.HandInput.Get(hand).Press(id)
}

func count(w donburi.World, c donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(c)).Count(w)
}

func byTexture(w donburi.World, texture string) []*donburi.Entry {
	var found []*donburi.Entry
	components.ObjectInfo.Each(w, func(e *donburi.Entry) {
		if components.ObjectInfo.Get(e).Texture == texture {
			found = append(found, e)
		}
	})
	return found
}

func ghosts(w donburi.World) []*donburi.Entry {
	var found []*donburi.Entry
	components.Playback.Each(w, func(e *donburi.Entry) {
		found = append(found, e)
	})
	return found
}

func isHeld(object *donburi.Entry) bool {
	return object.HasComponent(components.Grabbed) && !object.HasComponent(tags.Grabbable)
}

func isFree(object *donburi.Entry) bool {
	return object.HasComponent(tags.Grabbable) && !object.HasComponent(components.Grabbed)
}

// teleport places hand, goal included, centred on (x, y).
func teleport(hand *donburi.Entry, x, y float64) {
	obj := components.Object.Get(hand)
	obj.SetCenter(x, y)
	obj.Update()
	components.Hand.Get(hand).Goal.X = x
	components.Hand.Get(hand).Goal.Y = y
}
