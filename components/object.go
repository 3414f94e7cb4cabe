package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type ObjectData struct {
	*resolv.Object
}

// Center returns the centre of the object's bounding box.
func (o *ObjectData) Center() math.Vec2 {
	return math.Vec2{X: o.X + o.W/2, Y: o.Y + o.H/2}
}

// SetCenter moves the object so its bounding box is centred on (x, y).
// Callers must Update the object afterwards to refresh its cells.
func (o *ObjectData) SetCenter(x, y float64) {
	o.X = x - o.W/2
	o.Y = y - o.H/2
}

// Overlaps reports whether the bounding boxes of a and b intersect.
// resolv's Check only narrows candidates down to shared cells.
func Overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W &&
		a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

var Object = donburi.NewComponentType[ObjectData]()

type SpaceData struct {
	*resolv.Space
}

// Space is the singleton collision space shared by hands, sensors and objects.
var Space = donburi.NewComponentType[SpaceData]()
