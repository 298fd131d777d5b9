package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single ECS layer every entity and renderer lives on.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width    int
	Height   int
	TPS      int
	TileSize float64
	Title    string
}

// PlayerConfig contains the player body and presentation values
type PlayerConfig struct {
	// Collision body, relative to the sprite's top-left corner
	BodyWidth   float64
	BodyHeight  float64
	BodyOffsetX float64
	BodyOffsetY float64

	// Sprite dimensions
	SpriteWidth  float64
	SpriteHeight float64

	Color color.RGBA
}

// PhysicsConfig contains host physics values. Velocities are world units
// per second; the movement rules themselves are fixed in shared/gameplay.
type PhysicsConfig struct {
	Gravity      float64
	MaxFallSpeed float64

	// Distance of the side probes that report wall contact
	ContactProbe float64
}

// EmissionConfig contains particle presentation values
type EmissionConfig struct {
	LifetimeMs   float64
	Size         float64
	FallSpeed    float64
	MaxParticles int
	DripColor    color.RGBA
	TrailColor   color.RGBA
	Seed         uint64 // 0 seeds from the clock
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // How fast camera follows player (0.0-1.0)
	ParallaxFactor  float64 // Decal layer drift relative to the room center
	ParallaxMax     float64 // Max decal layer drift in pixels
}

// ScreenShakeConfig contains screen shake effect configuration
type ScreenShakeConfig struct {
	FrequencyX float64 // radians per frame of the horizontal wobble
	FrequencyY float64
}

// SquashStretchConfig contains squash/stretch effect configuration
type SquashStretchConfig struct {
	JumpScaleX float64 // horizontal scale on jump (< 1 = narrower)
	JumpScaleY float64 // vertical scale on jump (> 1 = taller)
	LandScaleX float64 // horizontal scale on land (> 1 = wider)
	LandScaleY float64 // vertical scale on land (< 1 = shorter)
	DurationMs float64 // one leg of the yoyo

	IdleScaleX     float64
	IdleScaleY     float64
	IdleDurationMs float64

	SplatSettleMs float64 // hazard splat scale back to 1
}

// RenderConfig contains colors and the active skin
type RenderConfig struct {
	Skin            SkinMode
	Palette         PaletteMode
	BackgroundColor color.RGBA
	HUDTextColor    color.RGBA
}

// LevelConfig selects where rooms come from
type LevelConfig struct {
	Start            int    // zero-based room index to begin on
	TMXDir           string // optional directory of .tmx rooms overriding the embedded set
	ClearDelayFrames int    // frames the room clear banner shows before the next room
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Enabled bool // draw collision bodies and contact flags
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Emission EmissionConfig
var Camera CameraConfig
var ScreenShake ScreenShakeConfig
var SquashStretch SquashStretchConfig
var Render RenderConfig
var Level LevelConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:    640,
		Height:   360,
		TPS:      60,
		TileSize: 32,
		Title:    "Squishroom",
	}

	Player = PlayerConfig{
		BodyWidth:    24,
		BodyHeight:   20,
		BodyOffsetX:  4,
		BodyOffsetY:  4,
		SpriteWidth:  32,
		SpriteHeight: 28,
		Color:        color.RGBA{R: 0x8a, G: 0x5a, B: 0x44, A: 255},
	}

	Physics = PhysicsConfig{
		Gravity:      900,
		MaxFallSpeed: 900,
		ContactProbe: 1,
	}

	Emission = EmissionConfig{
		LifetimeMs:   320,
		Size:         3,
		FallSpeed:    40,
		MaxParticles: 128,
		DripColor:    color.RGBA{R: 0x9f, G: 0xd6, B: 0x8c, A: 255},
		TrailColor:   color.RGBA{R: 0xc9, G: 0xa2, B: 0x7e, A: 255},
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.15,
		ParallaxFactor:  0.08,
		ParallaxMax:     48,
	}

	ScreenShake = ScreenShakeConfig{
		FrequencyX: 1.1,
		FrequencyY: 1.3,
	}

	SquashStretch = SquashStretchConfig{
		JumpScaleX:     0.85,
		JumpScaleY:     1.15,
		LandScaleX:     1.15,
		LandScaleY:     0.85,
		DurationMs:     90,
		IdleScaleX:     1.04,
		IdleScaleY:     0.96,
		IdleDurationMs: 700,
		SplatSettleMs:  240,
	}

	Render = RenderConfig{
		Skin:            SkinSkinned,
		Palette:         PaletteNormal,
		BackgroundColor: color.RGBA{R: 0x1a, G: 0x24, B: 0x1a, A: 255},
		HUDTextColor:    White,
	}

	Level = LevelConfig{
		ClearDelayFrames: 45,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{}
}
