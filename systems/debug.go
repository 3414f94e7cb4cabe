package systems

import (
	"github.com/automoto/ghosthand/components"
	cfg "github.com/automoto/ghosthand/config"
	"github.com/automoto/ghosthand/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines pickup sensors, goals and joints.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}
	w := ecs.World

	tags.Hand.Each(w, func(e *donburi.Entry) {
		hand := components.Hand.Get(e)
		if s := hand.Sensor; s != nil {
			vector.StrokeRect(screen, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), 1, cfg.Overlay.SensorColor, false)
		}

		// Goal cross
		gx, gy := float32(hand.Goal.X), float32(hand.Goal.Y)
		vector.StrokeLine(screen, gx-6, gy, gx+6, gy, 1, cfg.Overlay.SensorColor, false)
		vector.StrokeLine(screen, gx, gy-6, gx, gy+6, 1, cfg.Overlay.SensorColor, false)
	})

	components.Joint.Each(w, func(e *donburi.Entry) {
		joint := components.Joint.Get(e)
		if !w.Valid(joint.Hand) || !w.Valid(joint.Object) {
			return
		}
		a := components.Object.Get(w.Entry(joint.Hand)).Center()
		b := components.Object.Get(w.Entry(joint.Object)).Center()
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 2, cfg.Overlay.JointColor, true)
	})
}
