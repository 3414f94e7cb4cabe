package systems

import (
	"github.com/automoto/ghosthand/components"
	"github.com/automoto/ghosthand/logger"
	"github.com/automoto/ghosthand/systems/factory"
	"github.com/automoto/ghosthand/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

type delivery struct {
	collector *donburi.Entry
	object    *donburi.Entry
}

// UpdateCollectors consumes every object touching a collector that accepts
// its texture: a held object is severed from its hand first, then the
// delivery is counted or the next level requested, then the object goes.
func UpdateCollectors(ecs *ecs.ECS) {
	var deliveries []delivery
	components.Collector.Each(ecs.World, func(e *donburi.Entry) {
		collector := components.Collector.Get(e)
		obj := components.Object.Get(e).Object
		if obj.Space == nil {
			return
		}
		check := obj.Check(0, 0, tags.ResolvLevelTags...)
		if check == nil {
			return
		}
		for _, other := range check.Objects {
			entry, ok := other.Data.(*donburi.Entry)
			if !ok || !entry.Valid() || !entry.HasComponent(components.ObjectInfo) {
				continue
			}
			if components.ObjectInfo.Get(entry).Texture != collector.Collecting {
				continue
			}
			if components.Physics.Get(entry).Kind != components.BodyDynamic {
				continue
			}
			if !components.Overlaps(obj, other) {
				continue
			}
			deliveries = append(deliveries, delivery{collector: e, object: entry})
		}
	})

	if len(deliveries) == 0 {
		return
	}
	level := GetOrCreateLevel(ecs)

	for _, d := range deliveries {
		if !d.object.Valid() {
			continue
		}
		Sever(ecs.World, d.object)

		collector := components.Collector.Get(d.collector)
		switch collector.Interaction {
		case components.CollectorFinishLevel:
			level.RequestLoad(level.LevelIndex + 1)
			logger.L().Info("level finished", zap.Int("level", level.LevelIndex))
		default:
			level.Deliveries++
			logger.L().Info("delivery", zap.String("texture", collector.Collecting), zap.Int("deliveries", level.Deliveries))
		}

		factory.DestroyObject(ecs.World, d.object)
	}
}

// Sever tears down the joint holding object, if any. The holding hand drops
// back to Idle without seeing a Grab edge.
func Sever(w donburi.World, object *donburi.Entry) {
	if !object.HasComponent(components.Grabbed) {
		return
	}
	hand := components.Grabbed.Get(object).Hand
	if !w.Valid(hand) {
		factory.Free(object)
		return
	}
	factory.Release(w, w.Entry(hand))
	logger.L().Debug("severed", zap.Uint32("object", uint32(object.Entity().Id())))
}
