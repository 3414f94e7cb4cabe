package systems

import (
	"testing"
	"time"

	"github.com/automoto/ghosthand/assets"
	"github.com/automoto/ghosthand/components"
	cfg "github.com/automoto/ghosthand/config"
	"github.com/automoto/ghosthand/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi/features/math"
)

func TestMotionIsProportional(t *testing.T) {
	e := newTestECS(t, time.Second/60)
	hand := factory.CreateHand(e, 100, 100)

	components.Hand.Get(hand).Goal = math.Vec2{X: 200, Y: 50}
	UpdateMotion(e)
	physics := components.Physics.Get(hand)
	assert.InDelta(t, 100*cfg.Hand.Gain, physics.VelX, 1e-9)
	assert.InDelta(t, -50*cfg.Hand.Gain, physics.VelY, 1e-9)

	components.Hand.Get(hand).Goal = math.Vec2{X: 100, Y: 100}
	UpdateMotion(e)
	assert.Zero(t, physics.VelX)
	assert.Zero(t, physics.VelY)
}

func TestMotionConvergesOnGoal(t *testing.T) {
	e := newTestECS(t, time.Second/60)
	hand := factory.CreateHand(e, 100, 100)
	components.Hand.Get(hand).Goal = math.Vec2{X: 300, Y: 200}

	for i := 0; i < 300; i++ {
		e.Update()
	}
	center := components.Object.Get(hand).Center()
	assert.InDelta(t, 300, center.X, 0.5)
	assert.InDelta(t, 200, center.Y, 0.5)
}

func TestPhysicsDampsFreeBodies(t *testing.T) {
	e := newTestECS(t, time.Second)
	object := factory.CreateObject(e, assets.ObjectSpawn{Texture: "crate.png", X: 300, Y: 300, Width: 20, Height: 20})
	components.Physics.Get(object).VelX = 100

	UpdatePhysics(e)
	assert.InDelta(t, 50, components.Physics.Get(object).VelX, 1e-9)
	assert.InDelta(t, 340, components.Object.Get(object).X, 1e-9)
}

func TestPhysicsStopsAtSolids(t *testing.T) {
	e := newTestECS(t, time.Second)
	factory.CreateObject(e, assets.ObjectSpawn{X: 400, Y: 300, Width: 20, Height: 200, Static: true})
	object := factory.CreateObject(e, assets.ObjectSpawn{Texture: "crate.png", X: 370, Y: 300, Width: 20, Height: 20})
	physics := components.Physics.Get(object)
	physics.Damping = 0
	physics.VelX = 1000

	UpdatePhysics(e)
	assert.InDelta(t, 370, components.Object.Get(object).X, 1e-9, "flush against the wall")
	assert.Zero(t, physics.VelX)
}

func TestPhysicsLeavesStaticAndAnchoredBodies(t *testing.T) {
	e := newTestECS(t, time.Second)
	anchored := factory.CreateObject(e, assets.ObjectSpawn{Texture: "ace.png", X: 300, Y: 300, Anchored: true})
	components.Physics.Get(anchored).VelY = 100
	x, y := components.Object.Get(anchored).X, components.Object.Get(anchored).Y

	UpdatePhysics(e)
	assert.Equal(t, x, components.Object.Get(anchored).X)
	assert.Equal(t, y, components.Object.Get(anchored).Y)
	assert.Zero(t, components.Physics.Get(anchored).VelY)
}
