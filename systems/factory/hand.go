package factory

import (
	"time"

	"github.com/automoto/ghosthand/archetypes"
	"github.com/automoto/ghosthand/components"
	cfg "github.com/automoto/ghosthand/config"
	"github.com/automoto/ghosthand/logger"
	"github.com/automoto/ghosthand/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
	"go.uber.org/zap"
)

// CreateHand spawns the live, input-driven hand centred on (x, y).
func CreateHand(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	hand := spawnHand(ecs, x, y)
	hand.AddComponent(tags.CurrentHand)
	components.HandInput.Get(hand).PointerInside = true
	return hand
}

// CreateGhostHand spawns an autonomous hand that loops tape forever. The
// hand starts at the first recorded goal, or at (x, y) for an empty tape.
func CreateGhostHand(ecs *ecs.ECS, x, y float64, tape components.Tape, window time.Duration) *donburi.Entry {
	if len(tape.Samples) > 0 {
		x, y = tape.Samples[0].Goal.X, tape.Samples[0].Goal.Y
	}
	ghost := spawnHand(ecs, x, y, components.Playback, components.Fade)

	playback := &components.PlaybackData{
		Timer:    components.NewTimer(window, components.TimerRepeating),
		Template: tape.Clone(),
	}
	playback.Rewind()
	components.Playback.Set(ghost, playback)

	components.Fade.SetValue(ghost, components.FadeData{
		Tween: gween.New(0, cfg.Overlay.GhostAlpha, cfg.Overlay.GhostFadeIn, ease.OutQuad),
	})

	logger.L().Info("ghost hand spawned",
		zap.Stringer("tape", tape.ID),
		zap.Int("samples", len(tape.Samples)),
		zap.Int("grabs", len(tape.Grabs)),
		zap.Uint64("checksum", tape.Checksum()),
	)
	return ghost
}

func spawnHand(ecs *ecs.ECS, x, y float64, cs ...donburi.IComponentType) *donburi.Entry {
	hand := archetypes.Hand.Spawn(ecs, cs...)

	w, h := cfg.Hand.Width, cfg.Hand.Height
	obj := resolv.NewObject(x-w/2, y-h/2, w, h, tags.ResolvHand)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = hand
	components.Object.SetValue(hand, components.ObjectData{Object: obj})

	sw, sh := cfg.Hand.SensorWidth, cfg.Hand.SensorHeight
	sx, sy := x+cfg.Hand.SensorOffsetX, y+cfg.Hand.SensorOffsetY
	sensor := resolv.NewObject(sx-sw/2, sy-sh/2, sw, sh, tags.ResolvSensor)
	sensor.SetShape(resolv.NewRectangle(0, 0, sw, sh))
	sensor.Data = hand

	components.Hand.SetValue(hand, components.HandData{
		Goal:   math.Vec2{X: x, Y: y},
		Sensor: sensor,
	})
	components.Physics.SetValue(hand, components.PhysicsData{
		Damping: cfg.Hand.Damping,
		Kind:    components.BodyDynamic,
	})

	addToSpace(ecs.World, obj, sensor)
	return hand
}

// DestroyHand releases whatever the hand holds and removes it from the world.
func DestroyHand(w donburi.World, hand *donburi.Entry) {
	if !hand.Valid() {
		return
	}
	Release(w, hand)
	removeFromSpace(w, components.Object.Get(hand).Object, components.Hand.Get(hand).Sensor)
	w.Remove(hand.Entity())
}

// SensorCenter returns where the hand's pickup sensor sits for a hand centred
// on c.
func SensorCenter(c math.Vec2) math.Vec2 {
	return math.Vec2{X: c.X + cfg.Hand.SensorOffsetX, Y: c.Y + cfg.Hand.SensorOffsetY}
}
