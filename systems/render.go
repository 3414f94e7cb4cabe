package systems

import (
	"image/color"

	"github.com/automoto/ghosthand/components"
	cfg "github.com/automoto/ghosthand/config"
	"github.com/automoto/ghosthand/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawObjects draws every level object by its collider shape.
func DrawObjects(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.LevelObject.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		collider := components.Collider.Get(e)

		c := cfg.Overlay.ObjectColor
		switch {
		case e.HasComponent(components.Collector):
			c = cfg.Overlay.CollectorColor
		case e.HasComponent(components.Grabbed):
			c = cfg.Overlay.HeldColor
		case components.Physics.Get(e).Kind == components.BodyStatic:
			c = cfg.Overlay.SolidColor
		}

		switch collider.Kind {
		case components.ColliderCircle:
			center := obj.Center()
			vector.StrokeCircle(screen, float32(center.X), float32(center.Y), float32(obj.W/2), 2, c, true)
		case components.ColliderSegment:
			x0, y0 := obj.X, obj.Y
			x1, y1 := obj.X+obj.W, obj.Y+obj.H
			if collider.Width < 0 {
				x0, x1 = x1, x0
			}
			if collider.Height < 0 {
				y0, y1 = y1, y0
			}
			vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 3, c, true)
		default:
			vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 2, c, false)
		}
	})
}

// DrawHands draws the live hand and ghosts. Ghosts fade in and the recording
// hand is drawn in the recording colour.
func DrawHands(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Hand.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)

		c := cfg.Overlay.HandColor
		switch {
		case e.HasComponent(components.Recording):
			c = cfg.Overlay.RecordingColor
		case e.HasComponent(components.Fade):
			c = withAlpha(cfg.Overlay.GhostColor, components.Fade.Get(e).Alpha)
		}
		vector.FillRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), c, false)
	})
}

func withAlpha(c color.RGBA, alpha float32) color.RGBA {
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	// color.RGBA is premultiplied.
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}
