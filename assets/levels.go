// Package assets holds the built-in level catalogue. Levels are plain
// descriptors; spawning them into the world is done by systems/factory.
package assets

// Collider shape names accepted in ObjectSpawn.Collider.
const (
	ColliderRectangle = "rectangle"
	ColliderCircle    = "circle"
	ColliderSegment   = "segment"
)

// Grab behaviour names accepted in ObjectSpawn.Grab.
const (
	GrabInPlace = "grab"
	GrabSpawn   = "spawn"
)

// Collector interaction names accepted in CollectorSpawn.Interaction.
const (
	CollectorCount       = "count"
	CollectorFinishLevel = "finish_level"
)

type CollectorSpawn struct {
	Collecting  string // texture identity accepted
	Interaction string
}

// ObjectSpawn describes one level object. X and Y are the object centre in
// world pixels, except for segments where they are the start point.
type ObjectSpawn struct {
	Texture  string
	X, Y     float64
	Width    float64 // 0 = config default
	Height   float64 // 0 = config default
	Collider string  // "" = rectangle
	Grab     string  // "" = grab in place

	Grabbable bool
	Static    bool
	Anchored  bool
	Sensor    bool
	Collector *CollectorSpawn
}

type Level struct {
	Name       string
	Background [3]float64 // hue (degrees), saturation, lightness
	Objects    []ObjectSpawn
}

// border returns static walls around a 1280x720 play area.
func border() []ObjectSpawn {
	return []ObjectSpawn{
		{X: 640, Y: 710, Width: 1280, Height: 20, Static: true},
		{X: 640, Y: 10, Width: 1280, Height: 20, Static: true},
		{X: 10, Y: 360, Width: 20, Height: 720, Static: true},
		{X: 1270, Y: 360, Width: 20, Height: 720, Static: true},
	}
}

func withBorder(objects ...ObjectSpawn) []ObjectSpawn {
	return append(border(), objects...)
}

// Levels returns the built-in level catalogue in play order.
func Levels() []Level {
	return []Level{
		{
			Name:       "deck",
			Background: [3]float64{18, 0.57, 0.25},
			Objects: withBorder(
				ObjectSpawn{
					Texture: "ace_hearts.png", X: 200, Y: 360, Width: 64, Height: 90,
					Grab: GrabSpawn, Grabbable: true, Anchored: true,
				},
				ObjectSpawn{
					Texture: "tray.png", X: 1080, Y: 600, Width: 160, Height: 120,
					Static: true, Sensor: true,
					Collector: &CollectorSpawn{Collecting: "ace_hearts.png", Interaction: CollectorCount},
				},
			),
		},
		{
			Name:       "crate",
			Background: [3]float64{200, 0.35, 0.22},
			Objects: withBorder(
				ObjectSpawn{
					Texture: "crate.png", X: 300, Y: 560, Width: 96, Height: 96,
					Grabbable: true,
				},
				ObjectSpawn{X: 640, Y: 480, Width: 20, Height: 440, Static: true},
				ObjectSpawn{
					Texture: "door.png", X: 1100, Y: 560, Width: 120, Height: 200,
					Static: true, Sensor: true,
					Collector: &CollectorSpawn{Collecting: "crate.png", Interaction: CollectorFinishLevel},
				},
			),
		},
		{
			Name:       "workshop",
			Background: [3]float64{120, 0.25, 0.2},
			Objects: withBorder(
				ObjectSpawn{
					Texture: "bolt.png", X: 160, Y: 200, Width: 48, Height: 48,
					Grab: GrabSpawn, Grabbable: true, Anchored: true,
				},
				ObjectSpawn{
					Texture: "ball.png", X: 640, Y: 400, Width: 56, Height: 56,
					Collider: ColliderCircle, Grabbable: true,
				},
				ObjectSpawn{X: 400, Y: 500, Width: 480, Height: -120, Collider: ColliderSegment, Static: true},
				ObjectSpawn{
					Texture: "bin.png", X: 1120, Y: 620, Width: 140, Height: 100,
					Static: true, Sensor: true,
					Collector: &CollectorSpawn{Collecting: "bolt.png", Interaction: CollectorCount},
				},
			),
		},
	}
}
