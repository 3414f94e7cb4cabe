package systems

import (
	"github.com/automoto/ghosthand/components"
	cfg "github.com/automoto/ghosthand/config"
	"github.com/automoto/ghosthand/logger"
	"github.com/automoto/ghosthand/systems/factory"
	"github.com/automoto/ghosthand/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateGrab toggles every hand with a Grab edge: Idle hands try a pickup,
// Holding hands drop. Recording hands also log the edge time.
func UpdateGrab(ecs *ecs.ECS) {
	var pressed []*donburi.Entry
	tags.Hand.Each(ecs.World, func(e *donburi.Entry) {
		if components.HandInput.Get(e).JustPressed(cfg.ActionGrab) {
			pressed = append(pressed, e)
		}
	})

	for _, hand := range pressed {
		if !hand.Valid() {
			continue
		}
		if hand.HasComponent(components.Recording) {
			rec := components.Recording.Get(hand)
			rec.Tape.Grabs = append(rec.Tape.Grabs, rec.Timer.Elapsed())
		}

		if hand.HasComponent(components.Grabbing) {
			fields := []zap.Field{zap.Uint32("hand", uint32(hand.Entity().Id()))}
			if held, ok := factory.HeldObject(ecs.World, hand); ok {
				fields = append(fields, zap.String("texture", components.ObjectInfo.Get(held).Texture))
			}
			factory.Release(ecs.World, hand)
			logger.L().Debug("drop", fields...)
			continue
		}
		pickup(ecs, hand)
	}
}

// pickup grabs the first Grabbable object overlapping the hand's sensor.
// Nothing in range is a no-op.
func pickup(ecs *ecs.ECS, hand *donburi.Entry) {
	target := touching(hand)
	if target == nil {
		return
	}

	behavior := components.ObjectInfo.Get(target).Grab
	if behavior == components.GrabSpawn {
		target = factory.CloneObject(ecs, target)
	}
	factory.Attach(ecs, hand, target)

	logger.L().Debug("pickup",
		zap.Uint32("hand", uint32(hand.Entity().Id())),
		zap.Stringer("behavior", behavior),
		zap.Uint32("object", uint32(target.Entity().Id())),
		zap.String("texture", components.ObjectInfo.Get(target).Texture),
	)
}

// touching returns the Grabbable object under the hand's sensor with the
// lowest entity id, or nil.
func touching(hand *donburi.Entry) *donburi.Entry {
	sensor := components.Hand.Get(hand).Sensor
	if sensor == nil || sensor.Space == nil {
		return nil
	}
	check := sensor.Check(0, 0, tags.ResolvGrabbable)
	if check == nil {
		return nil
	}

	var best *donburi.Entry
	for _, obj := range check.Objects {
		e, ok := obj.Data.(*donburi.Entry)
		if !ok || !e.Valid() || !e.HasComponent(tags.Grabbable) || !e.HasComponent(components.ObjectInfo) {
			continue
		}
		if !components.Overlaps(sensor, obj) {
			continue
		}
		if best == nil || e.Entity().Id() < best.Entity().Id() {
			best = e
		}
	}
	return best
}
