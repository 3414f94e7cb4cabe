package factory

import (
	stdmath "math"

	"github.com/automoto/ghosthand/archetypes"
	"github.com/automoto/ghosthand/assets"
	"github.com/automoto/ghosthand/components"
	cfg "github.com/automoto/ghosthand/config"
	"github.com/automoto/ghosthand/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateObject spawns a level object from its descriptor.
func CreateObject(ecs *ecs.ECS, spawn assets.ObjectSpawn) *donburi.Entry {
	collider := colliderOf(spawn)
	x, y, w, h := bounds(spawn, collider)

	extra := []donburi.IComponentType{components.ObjectInfo}
	if spawn.Grabbable {
		extra = append(extra, tags.Grabbable)
	}
	if spawn.Collector != nil {
		extra = append(extra, components.Collector)
	}
	object := archetypes.Object.Spawn(ecs, extra...)

	obj := resolv.NewObject(x, y, w, h, resolvTags(spawn)...)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = object
	components.Object.SetValue(object, components.ObjectData{Object: obj})

	components.Collider.SetValue(object, collider)
	components.ObjectInfo.SetValue(object, components.ObjectInfoData{
		Grab:    grabBehavior(spawn.Grab),
		Texture: spawn.Texture,
	})
	components.Physics.SetValue(object, components.PhysicsData{
		Damping: cfg.Object.Damping,
		Kind:    bodyKind(spawn),
		Sensor:  spawn.Sensor,
	})
	if spawn.Collector != nil {
		interaction := components.CollectorCount
		if spawn.Collector.Interaction == assets.CollectorFinishLevel {
			interaction = components.CollectorFinishLevel
		}
		components.Collector.SetValue(object, components.CollectorData{
			Collecting:  spawn.Collector.Collecting,
			Interaction: interaction,
		})
	}

	addToSpace(ecs.World, obj)
	return object
}

// CloneObject spawns a free dynamic copy of template at its current transform.
// The copy is always grabbed in place, so it never dispenses further copies.
func CloneObject(ecs *ecs.ECS, template *donburi.Entry) *donburi.Entry {
	src := components.Object.Get(template)
	info := *components.ObjectInfo.Get(template)
	info.Grab = components.GrabInPlace

	object := archetypes.Object.Spawn(ecs, components.ObjectInfo)

	obj := resolv.NewObject(src.X, src.Y, src.W, src.H, tags.ResolvObject, tags.ResolvGrabbable)
	obj.SetShape(resolv.NewRectangle(0, 0, src.W, src.H))
	obj.Data = object
	components.Object.SetValue(object, components.ObjectData{Object: obj})

	components.Collider.SetValue(object, *components.Collider.Get(template))
	components.ObjectInfo.SetValue(object, info)
	components.Physics.SetValue(object, components.PhysicsData{
		Damping: cfg.Object.Damping,
		Kind:    components.BodyDynamic,
	})

	addToSpace(ecs.World, obj)
	return object
}

// DestroyObject tears down any joint holding the object, then removes it.
func DestroyObject(w donburi.World, object *donburi.Entry) {
	if !object.Valid() {
		return
	}
	if object.HasComponent(components.Grabbed) {
		if hand := entryOf(w, components.Grabbed.Get(object).Hand); hand != nil {
			Release(w, hand)
		}
	}
	removeFromSpace(w, components.Object.Get(object).Object)
	w.Remove(object.Entity())
}

func colliderOf(spawn assets.ObjectSpawn) components.ColliderData {
	c := components.ColliderData{Width: spawn.Width, Height: spawn.Height}
	switch spawn.Collider {
	case assets.ColliderCircle:
		c.Kind = components.ColliderCircle
		if c.Width == 0 {
			c.Width = cfg.Object.DefaultWidth
		}
		c.Height = c.Width
	case assets.ColliderSegment:
		c.Kind = components.ColliderSegment
	default:
		c.Kind = components.ColliderRectangle
		if c.Width == 0 {
			c.Width = cfg.Object.DefaultWidth
		}
		if c.Height == 0 {
			c.Height = cfg.Object.DefaultHeight
		}
	}
	return c
}

// bounds returns the top-left corner and size of the collider's bounding box.
func bounds(spawn assets.ObjectSpawn, c components.ColliderData) (x, y, w, h float64) {
	if c.Kind == components.ColliderSegment {
		x0, y0 := spawn.X, spawn.Y
		x1, y1 := spawn.X+c.Width, spawn.Y+c.Height
		x, y = stdmath.Min(x0, x1), stdmath.Min(y0, y1)
		w, h = stdmath.Max(stdmath.Abs(c.Width), 1), stdmath.Max(stdmath.Abs(c.Height), 1)
		return x, y, w, h
	}
	return spawn.X - c.Width/2, spawn.Y - c.Height/2, c.Width, c.Height
}

// resolvTags returns the body tag for the object's role, plus the grabbable
// tag when hands may pick it up.
func resolvTags(spawn assets.ObjectSpawn) []string {
	var tag string
	switch {
	case spawn.Collector != nil:
		tag = tags.ResolvCollector
	case spawn.Sensor:
		tag = tags.ResolvSensor
	case spawn.Static:
		tag = tags.ResolvSolid
	default:
		tag = tags.ResolvObject
	}
	if spawn.Grabbable {
		return []string{tag, tags.ResolvGrabbable}
	}
	return []string{tag}
}

func bodyKind(spawn assets.ObjectSpawn) components.BodyKind {
	switch {
	case spawn.Static:
		return components.BodyStatic
	case spawn.Anchored:
		return components.BodyAnchored
	}
	return components.BodyDynamic
}

func grabBehavior(name string) components.GrabBehavior {
	if name == assets.GrabSpawn {
		return components.GrabSpawn
	}
	return components.GrabInPlace
}

// entryOf resolves a weak reference, returning nil once the entity is gone.
func entryOf(w donburi.World, e donburi.Entity) *donburi.Entry {
	if e == donburi.Null || !w.Valid(e) {
		return nil
	}
	return w.Entry(e)
}
