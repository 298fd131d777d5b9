// Package animations steps frame indices for the player's animation keys.
package animations

import (
	cfg "github.com/automoto/squishroom/config"
	"github.com/automoto/squishroom/shared/gameplay"
)

type Animation struct {
	First            int
	Last             int
	Step             int     // how many indices do we move per frame
	SpeedInTps       float32 // how many ticks before next frame
	frameCounter     float32
	frame            int
	Looped           bool
	FreezeOnComplete bool // If true, stay on last frame instead of looping
}

func (a *Animation) Update() {
	a.frameCounter -= 1.0
	if a.frameCounter < 0.0 {
		a.frameCounter = a.SpeedInTps
		a.frame += a.Step
		if a.frame > a.Last {
			a.Looped = true
			if a.FreezeOnComplete {
				a.frame = a.Last
			} else {
				a.frame = a.First
			}
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// Progress is how far through one pass the animation is, in [0,1].
func (a *Animation) Progress() float64 {
	span := a.Last - a.First + 1
	if span <= 0 {
		return 0
	}
	return float64(a.frame-a.First) / float64(span)
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.frameCounter = a.SpeedInTps
	a.Looped = false
}

func NewAnimation(first, last, step int, speed float32) *Animation {
	return &Animation{
		First:        first,
		Last:         last,
		Step:         max(step, 1),
		SpeedInTps:   speed,
		frameCounter: speed,
		frame:        first,
	}
}

// ForKey builds a fresh animation from the player's definition for key.
// One-shot animations freeze on their last frame.
func ForKey(key gameplay.AnimKey) *Animation {
	def, ok := cfg.PlayerAnimations[key]
	if !ok {
		def = cfg.PlayerAnimations[gameplay.AnimIdle]
	}
	a := NewAnimation(def.First, def.Last, def.Step, float32(def.Speed))
	a.FreezeOnComplete = !def.Loop
	return a
}
