package systems

import (
	"github.com/automoto/ghosthand/components"
	"github.com/automoto/ghosthand/logger"
	"github.com/automoto/ghosthand/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateJoints pins every held object at its joint anchor and hands it the
// holder's velocity, so a released object keeps moving.
func UpdateJoints(ecs *ecs.ECS) {
	w := ecs.World
	components.Joint.Each(w, func(e *donburi.Entry) {
		joint := components.Joint.Get(e)
		if !w.Valid(joint.Hand) || !w.Valid(joint.Object) {
			return
		}
		hand, object := w.Entry(joint.Hand), w.Entry(joint.Object)

		center := components.Object.Get(hand).Center()
		components.Object.Get(object).SetCenter(center.X+joint.Anchor.X, center.Y+joint.Anchor.Y)

		from, to := components.Physics.Get(hand), components.Physics.Get(object)
		to.VelX, to.VelY = from.VelX, from.VelY
	})
}

// PruneJoints removes joints left without both ends and clears relations
// that point at a missing joint or hand, so none survive the step.
func PruneJoints(ecs *ecs.ECS) {
	w := ecs.World

	var orphans []donburi.Entity
	components.Joint.Each(w, func(e *donburi.Entry) {
		joint := components.Joint.Get(e)
		if !w.Valid(joint.Hand) || !w.Valid(joint.Object) || !linked(w, e.Entity(), joint) {
			orphans = append(orphans, e.Entity())
		}
	})
	for _, j := range orphans {
		factory.Detach(w, j)
		logger.L().Debug("pruned joint", zap.Uint32("joint", uint32(j.Id())))
	}

	var stale []*donburi.Entry
	components.Grabbing.Each(w, func(e *donburi.Entry) {
		if !w.Valid(components.Grabbing.Get(e).Joint) {
			stale = append(stale, e)
		}
	})
	for _, e := range stale {
		e.RemoveComponent(components.Grabbing)
	}

	stale = stale[:0]
	components.Grabbed.Each(w, func(e *donburi.Entry) {
		hand := components.Grabbed.Get(e).Hand
		if !w.Valid(hand) || !w.Entry(hand).HasComponent(components.Grabbing) {
			stale = append(stale, e)
		}
	})
	for _, e := range stale {
		factory.Free(e)
	}
}

// linked reports whether both ends of joint still point back at it.
func linked(w donburi.World, j donburi.Entity, joint *components.JointData) bool {
	hand, object := w.Entry(joint.Hand), w.Entry(joint.Object)
	if !hand.HasComponent(components.Grabbing) || components.Grabbing.Get(hand).Joint != j {
		return false
	}
	return object.HasComponent(components.Grabbed) && components.Grabbed.Get(object).Hand == joint.Hand
}
