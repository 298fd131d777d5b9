package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ScreenShakeData tracks active screen shake effect on the camera
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  int     // frames
	Elapsed   int     // frames elapsed (for oscillation)
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// SquashStretchData drives sprite scale deformation for jump, land and idle.
// X and Y run as separate sequences so each axis keeps its own curve.
type SquashStretchData struct {
	ScaleX, ScaleY float64
	X, Y           *gween.Sequence
	Idle           bool // looping wobble; replaced by any jump or land pulse
}

var SquashStretch = donburi.NewComponentType[SquashStretchData]()

// SplatData tracks the hazard splat scale easing back to 1.
type SplatData struct {
	Scale float64
	Tween *gween.Tween
}

var Splat = donburi.NewComponentType[SplatData]()
