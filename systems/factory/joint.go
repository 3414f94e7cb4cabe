package factory

import (
	"github.com/automoto/ghosthand/archetypes"
	"github.com/automoto/ghosthand/components"
	cfg "github.com/automoto/ghosthand/config"
	"github.com/automoto/ghosthand/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// Attach holds object in hand: the object swaps Grabbable for Grabbed, a
// joint is spawned, and the hand gains Grabbing. Both sides are written
// before Attach returns.
func Attach(ecs *ecs.ECS, hand, object *donburi.Entry) *donburi.Entry {
	joint := archetypes.Joint.Spawn(ecs)
	components.Joint.SetValue(joint, components.JointData{
		Object: object.Entity(),
		Hand:   hand.Entity(),
		Anchor: math.Vec2{X: cfg.Hand.SensorOffsetX, Y: cfg.Hand.SensorOffsetY},
	})

	if object.HasComponent(tags.Grabbable) {
		object.RemoveComponent(tags.Grabbable)
	}
	if !object.HasComponent(components.Grabbed) {
		object.AddComponent(components.Grabbed)
	}
	components.Grabbed.SetValue(object, components.GrabbedData{Hand: hand.Entity()})

	if !hand.HasComponent(components.Grabbing) {
		hand.AddComponent(components.Grabbing)
	}
	components.Grabbing.SetValue(hand, components.GrabbingData{Joint: joint.Entity()})

	return joint
}

// Detach destroys joint and clears both sides of the relation: the hand
// loses Grabbing and the object becomes Grabbable again. Sides that no
// longer exist are skipped.
func Detach(w donburi.World, joint donburi.Entity) {
	entry := entryOf(w, joint)
	if entry == nil || !entry.HasComponent(components.Joint) {
		return
	}
	data := *components.Joint.Get(entry)

	if hand := entryOf(w, data.Hand); hand != nil && hand.HasComponent(components.Grabbing) {
		if components.Grabbing.Get(hand).Joint == joint {
			hand.RemoveComponent(components.Grabbing)
		}
	}
	if object := entryOf(w, data.Object); object != nil {
		if !object.HasComponent(components.Grabbed) || components.Grabbed.Get(object).Hand == data.Hand {
			Free(object)
		}
	}
	w.Remove(joint)
}

// Free returns object to the Grabbable state.
func Free(object *donburi.Entry) {
	if object.HasComponent(components.Grabbed) {
		object.RemoveComponent(components.Grabbed)
	}
	if !object.HasComponent(tags.Grabbable) {
		object.AddComponent(tags.Grabbable)
	}
}

// Release drops whatever hand holds. A Grabbing that points at a missing
// joint is cleared as well.
func Release(w donburi.World, hand *donburi.Entry) {
	if !hand.Valid() || !hand.HasComponent(components.Grabbing) {
		return
	}
	Detach(w, components.Grabbing.Get(hand).Joint)
	if hand.Valid() && hand.HasComponent(components.Grabbing) {
		hand.RemoveComponent(components.Grabbing)
	}
}

// HeldObject returns the object hand is holding, if the joint is intact.
func HeldObject(w donburi.World, hand *donburi.Entry) (*donburi.Entry, bool) {
	if !hand.HasComponent(components.Grabbing) {
		return nil, false
	}
	joint := entryOf(w, components.Grabbing.Get(hand).Joint)
	if joint == nil {
		return nil, false
	}
	object := entryOf(w, components.Joint.Get(joint).Object)
	return object, object != nil
}
