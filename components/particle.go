package components

import (
	"image/color"

	"github.com/automoto/squishroom/shared/gameplay"
	"github.com/yohamta/donburi"
)

// EmissionData holds the player's particle stream schedules.
type EmissionData struct {
	Drip  gameplay.Schedule
	Trail gameplay.Schedule
	Now   float64 // milliseconds since the room loaded
}

var Emission = donburi.NewComponentType[EmissionData]()

type ParticleData struct {
	X, Y       float64
	SpeedY     float64
	AgeMs      float64
	LifetimeMs float64
	Color      color.RGBA
}

// Alpha fades linearly over the particle's lifetime.
func (p *ParticleData) Alpha() float64 {
	if p.LifetimeMs <= 0 {
		return 0
	}
	return max(0, 1-p.AgeMs/p.LifetimeMs)
}

var Particle = donburi.NewComponentType[ParticleData]()
