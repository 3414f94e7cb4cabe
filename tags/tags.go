package tags

import "github.com/yohamta/donburi"

var (
	Hand        = donburi.NewTag().SetName("Hand")
	CurrentHand = donburi.NewTag().SetName("CurrentHand") // receives live input
	LevelObject = donburi.NewTag().SetName("LevelObject") // despawned on level load
	Grabbable   = donburi.NewTag().SetName("Grabbable")
)

// Resolv tags for physics collision
const (
	ResolvSolid     = "solid"
	ResolvHand      = "hand"
	ResolvSensor    = "sensor"
	ResolvObject    = "object"
	ResolvCollector = "collector"
	ResolvGrabbable = "grabbable" // alongside the body tag, on anything a hand may pick up
)

// ResolvLevelTags matches every level object body, whatever its role.
var ResolvLevelTags = []string{ResolvObject, ResolvSolid, ResolvSensor, ResolvCollector}
