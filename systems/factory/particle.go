package factory

import (
	"image/color"

	"github.com/automoto/squishroom/archetypes"
	"github.com/automoto/squishroom/components"
	cfg "github.com/automoto/squishroom/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnParticle creates one short-lived particle at (x, y).
func SpawnParticle(ecs *ecs.ECS, x, y float64, c color.RGBA) *donburi.Entry {
	p := archetypes.Particle.Spawn(ecs)
	components.Particle.SetValue(p, components.ParticleData{
		X:          x,
		Y:          y,
		SpeedY:     cfg.Emission.FallSpeed,
		LifetimeMs: cfg.Emission.LifetimeMs,
		Color:      c,
	})
	return p
}
