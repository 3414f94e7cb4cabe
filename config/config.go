package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	TPS    int `yaml:"tps"`
}

// FixedStep returns the duration of one simulation step.
func (c *Config) FixedStep() time.Duration {
	if c.TPS <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TPS)
}

// HandConfig contains all hand-related configuration values
type HandConfig struct {
	// Motion
	Gain    float64 `yaml:"gain"`    // velocity per unit of goal error
	Damping float64 `yaml:"damping"` // linear damping coefficient

	// Body
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Pickup sensor, relative to the hand centre. The joint anchor sits at
	// the sensor centre.
	SensorOffsetX float64 `yaml:"sensorOffsetX"`
	SensorOffsetY float64 `yaml:"sensorOffsetY"`
	SensorWidth   float64 `yaml:"sensorWidth"`
	SensorHeight  float64 `yaml:"sensorHeight"`
}

// ObjectConfig contains defaults for level objects
type ObjectConfig struct {
	Damping       float64 `yaml:"damping"`
	DefaultWidth  float64 `yaml:"defaultWidth"`
	DefaultHeight float64 `yaml:"defaultHeight"`
}

// RecordConfig contains recording and playback configuration
type RecordConfig struct {
	Window time.Duration `yaml:"window"` // capture length and playback loop length
}

// PhysicsConfig contains collision space configuration
type PhysicsConfig struct {
	CellSize int `yaml:"cellSize"`
}

// LevelConfig contains level progression configuration
type LevelConfig struct {
	DeliveryQuota int `yaml:"deliveryQuota"` // deliveries needed to submit a level
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay bool `yaml:"overlay"` // draw collision boxes, sensors and joints
	Verbose bool `yaml:"verbose"` // development logger at debug level
}

// OverlayConfig contains debug overlay colours
type OverlayConfig struct {
	HandColor      color.RGBA
	GhostColor     color.RGBA
	RecordingColor color.RGBA
	SensorColor    color.RGBA
	ObjectColor    color.RGBA
	HeldColor      color.RGBA
	SolidColor     color.RGBA
	CollectorColor color.RGBA
	JointColor     color.RGBA
	GhostFadeIn    float32 // seconds for a new ghost to reach full alpha
	GhostAlpha     float32
}

// Global configuration instances
var C *Config
var Hand HandConfig
var Object ObjectConfig
var Record RecordConfig
var Physics PhysicsConfig
var Level LevelConfig
var Debug DebugConfig
var Overlay OverlayConfig

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		TPS:    60,
	}

	Hand = HandConfig{
		Gain:    5.0,
		Damping: 0.0,

		Width:  48,
		Height: 48,

		SensorOffsetX: 0,
		SensorOffsetY: -100, // above the hand body, under the cursor
		SensorWidth:   100,
		SensorHeight:  150,
	}

	Object = ObjectConfig{
		Damping:       1.0,
		DefaultWidth:  64,
		DefaultHeight: 64,
	}

	Record = RecordConfig{
		Window: 3 * time.Second,
	}

	Physics = PhysicsConfig{
		CellSize: 16,
	}

	Level = LevelConfig{
		DeliveryQuota: 3,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Overlay: true,
		Verbose: false,
	}

	Overlay = OverlayConfig{
		HandColor:      color.RGBA{R: 230, G: 180, B: 150, A: 255},
		GhostColor:     color.RGBA{R: 150, G: 200, B: 255, A: 255},
		RecordingColor: color.RGBA{R: 255, G: 60, B: 60, A: 255},
		SensorColor:    color.RGBA{R: 0, G: 255, B: 255, A: 255},
		ObjectColor:    color.RGBA{R: 255, G: 255, B: 255, A: 255},
		HeldColor:      color.RGBA{R: 255, G: 255, B: 0, A: 255},
		SolidColor:     color.RGBA{R: 100, G: 100, B: 100, A: 255},
		CollectorColor: color.RGBA{R: 0, G: 255, B: 60, A: 255},
		JointColor:     color.RGBA{R: 255, G: 0, B: 255, A: 255},
		GhostFadeIn:    0.5,
		GhostAlpha:     0.6,
	}
}
