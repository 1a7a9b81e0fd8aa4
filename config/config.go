package config

import (
	"image/color"

	"github.com/automoto/scaaale/movement"
)

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
	// AppName keys the save data directory.
	AppName string
}

// PhysicsConfig sizes the collision space.
type PhysicsConfig struct {
	TileSize    float64
	CellSize    int
	Skin        float64
	GroundProbe float64
}

// PlatformConfig contains falling platform behaviour
type PlatformConfig struct {
	DropDelay      float64 // seconds between first contact and falling
	FallSpeed      float64 // units per tick
	RestartDelay   float64 // seconds hidden before returning
	ReturnDuration float32 // seconds of the bounce back tween
}

// ElevatorConfig contains elevator behaviour
type ElevatorConfig struct {
	Speed float64 // units per tick
}

// InteractionConfig contains pickups, exits and moving hazards
type InteractionConfig struct {
	PinHoverHeight    float64
	PinHoverDuration  float32
	SharpenerDuration float32 // seconds for one leg of the patrol
	ExitPulseDuration float32
}

// EffectsConfig contains landing dust particles
type EffectsConfig struct {
	DustCount    int
	DustLifetime int // ticks
	DustSpeedX   float64
	DustSpeedY   float64
	DustGravity  float64
	DustSize     float32
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing         float64 // How fast camera follows player (0.0-1.0)
	LookAheadDistanceX      float64 // Max horizontal look-ahead offset in world units
	LookAheadSmoothing      float64 // How fast look-ahead offset changes (0.0-1.0)
	LookAheadSpeedThreshold float64 // Minimum speed to update look-ahead
}

// UIConfig contains the HUD line
type UIConfig struct {
	HUDFontSize float64
	HUDMarginX  int
	HUDMarginY  int
	TextColor   color.RGBA
	ShadowColor color.RGBA
}

// DebugConfig contains debug options, overridable by command-line flags
type DebugConfig struct {
	Enabled bool
	// Colors by physics body kind
	BodyColors map[string]color.RGBA
}

// Global configuration instances
var C *Config
var Player movement.Params
var Physics PhysicsConfig
var Platform PlatformConfig
var Elevator ElevatorConfig
var Interaction InteractionConfig
var Effects EffectsConfig
var Camera CameraConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}

	Background = color.RGBA{R: 34, G: 32, B: 52, A: 255}
	WallColor  = color.RGBA{R: 89, G: 86, B: 82, A: 255}
	DustColor  = color.RGBA{R: 220, G: 210, B: 190, A: 255}
)

func init() {
	C = &Config{
		Width:   384,
		Height:  216,
		Title:   "scaaale",
		AppName: "scaaale",
	}

	Physics = PhysicsConfig{
		TileSize:    24,
		CellSize:    24,
		Skin:        0.01,
		GroundProbe: 0.1,
	}

	Debug = DebugConfig{
		Enabled: false,
		BodyColors: map[string]color.RGBA{
			"fixed":     Blue,
			"kinematic": Yellow,
			"sensor":    Green,
			"hazard":    Red,
			"player":    Magenta,
		},
	}

	UI = UIConfig{
		HUDFontSize: 10,
		HUDMarginX:  6,
		HUDMarginY:  14,
		TextColor:   White,
		ShadowColor: BlackOverlay,
	}

	Reset()
}

// generation counts Resets, so holders of copied tuning know to refresh.
var generation int

// Generation changes every time the tunable values are reset or reloaded.
func Generation() int {
	return generation
}

// Reset restores every tunable value to its default. Tuning files are applied
// on top of these.
func Reset() {
	generation++
	Player = movement.DefaultParams()

	Platform = PlatformConfig{
		DropDelay:      0.5,
		FallSpeed:      1.5,
		RestartDelay:   2.0,
		ReturnDuration: 1.0,
	}

	Elevator = ElevatorConfig{
		Speed: 0.3,
	}

	Interaction = InteractionConfig{
		PinHoverHeight:    6,
		PinHoverDuration:  2.0,
		SharpenerDuration: 3.0,
		ExitPulseDuration: 0.8,
	}

	Effects = EffectsConfig{
		DustCount:    8,
		DustLifetime: 24,
		DustSpeedX:   1.2,
		DustSpeedY:   1.0,
		DustGravity:  0.08,
		DustSize:     2,
	}

	Camera = CameraConfig{
		FollowSmoothing:         0.1,
		LookAheadDistanceX:      36.0, // ~10% of the screen width
		LookAheadSmoothing:      0.05,
		LookAheadSpeedThreshold: 0.1,
	}
}

// FallDistance is how far a platform sinks before it hides: one screen.
func FallDistance() float64 {
	return float64(C.Height)
}
