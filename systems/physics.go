package systems

import (
	"github.com/automoto/ghosthand/components"
	"github.com/automoto/ghosthand/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates free bodies: linear damping, then a move along
// each axis that stops at static solids. Hands pass through everything and
// held objects are placed by UpdateJoints instead.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := stepOf(ecs).Seconds()

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		if physics.Kind != components.BodyDynamic {
			physics.VelX, physics.VelY = 0, 0
			return
		}
		if e.HasComponent(components.Grabbed) {
			return
		}

		if physics.Damping > 0 {
			f := 1 / (1 + dt*physics.Damping)
			physics.VelX *= f
			physics.VelY *= f
		}

		obj := components.Object.Get(e).Object
		dx, dy := physics.VelX*dt, physics.VelY*dt
		if e.HasComponent(tags.Hand) || physics.Sensor || obj.Space == nil {
			obj.X += dx
			obj.Y += dy
			return
		}

		if blocked := moveX(obj, dx); blocked {
			physics.VelX = 0
		}
		if blocked := moveY(obj, dy); blocked {
			physics.VelY = 0
		}
	})
}

// moveX moves obj by dx in chunks of at most half its width, stopping flush
// against the first solid in the way. resolv only checks the destination.
func moveX(obj *resolv.Object, dx float64) bool {
	for dx != 0 {
		d := chunk(dx, obj.W)
		if stop, hit := sweepX(obj, d); hit {
			obj.X += stop
			return true
		}
		obj.X += d
		dx -= d
	}
	return false
}

// moveY is moveX along the vertical axis.
func moveY(obj *resolv.Object, dy float64) bool {
	for dy != 0 {
		d := chunk(dy, obj.H)
		if stop, hit := sweepY(obj, d); hit {
			obj.Y += stop
			return true
		}
		obj.Y += d
		dy -= d
	}
	return false
}

func chunk(d, size float64) float64 {
	limit := size / 2
	if limit < 1 {
		limit = 1
	}
	if d > limit {
		return limit
	}
	if d < -limit {
		return -limit
	}
	return d
}

func sweepX(obj *resolv.Object, dx float64) (float64, bool) {
	check := obj.Check(dx, 0, tags.ResolvSolid)
	if check == nil {
		return dx, false
	}
	hit := false
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		// Bodies already inside a solid may move out of it.
		if !overlapsAt(obj, solid, dx, 0) || overlapsAt(obj, solid, 0, 0) {
			continue
		}
		if dx > 0 {
			dx = solid.X - obj.W - obj.X
		} else {
			dx = solid.X + solid.W - obj.X
		}
		hit = true
	}
	return dx, hit
}

func sweepY(obj *resolv.Object, dy float64) (float64, bool) {
	check := obj.Check(0, dy, tags.ResolvSolid)
	if check == nil {
		return dy, false
	}
	hit := false
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if !overlapsAt(obj, solid, 0, dy) || overlapsAt(obj, solid, 0, 0) {
			continue
		}
		if dy > 0 {
			dy = solid.Y - obj.H - obj.Y
		} else {
			dy = solid.Y + solid.H - obj.Y
		}
		hit = true
	}
	return dy, hit
}

func overlapsAt(obj, other *resolv.Object, dx, dy float64) bool {
	return obj.X+dx < other.X+other.W && other.X < obj.X+dx+obj.W &&
		obj.Y+dy < other.Y+other.H && other.Y < obj.Y+dy+obj.H
}
