package systems

import (
	"image/color"
	"math/rand/v2"
	"time"

	"github.com/automoto/squishroom/components"
	cfg "github.com/automoto/squishroom/config"
	"github.com/automoto/squishroom/shared/gameplay"
	"github.com/automoto/squishroom/systems/factory"
	"github.com/automoto/squishroom/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var emitter = NewParticleEmitter(0)

// NewParticleEmitter builds an emitter over a PCG source. A zero seed is
// replaced with the current time.
func NewParticleEmitter(seed uint64) *gameplay.Emitter {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return gameplay.NewEmitter(rand.New(rand.NewPCG(seed, seed>>1|1)))
}

// SeedParticles replaces the package emitter, making every later burst
// reproducible for a given seed.
func SeedParticles(seed uint64) {
	emitter = NewParticleEmitter(seed)
}

// UpdateParticles advances the emission clock, fires the drip and trail
// streams when due, and ages out live particles.
func UpdateParticles(ecs *ecs.ECS) {
	stepMs := 1000 / float64(cfg.C.TPS)
	live := ageParticles(ecs, stepMs)

	if levelIsComplete(ecs) {
		return
	}

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		em := components.Emission.Get(e)
		obj := components.Object.Get(e)
		s := &player.State
		em.Now += stepMs

		x, y := spriteCenter(obj)

		var burst []gameplay.Particle
		if s.IsDripping {
			em.Drip, burst = emitter.Drip(em.Drip, em.Now, x, y)
			live += spawnBurst(ecs, burst, live, cfg.Emission.DripColor)
		}
		if s.OnGround && s.VelocityX != 0 {
			em.Trail, burst = emitter.Trail(em.Trail, em.Now, x, y, s.VelocityX)
			live += spawnBurst(ecs, burst, live, cfg.Emission.TrailColor)
		}
	})
}

// ageParticles moves and fades particles, removing the expired ones. It
// returns how many are still alive.
func ageParticles(ecs *ecs.ECS, stepMs float64) int {
	var toRemove []*donburi.Entry
	live := 0

	tags.Particle.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		p.AgeMs += stepMs
		p.Y += p.SpeedY * stepMs / 1000
		if p.AgeMs >= p.LifetimeMs {
			toRemove = append(toRemove, e)
			return
		}
		live++
	})

	for _, e := range toRemove {
		e.Remove()
	}
	return live
}

// spawnBurst creates entities for burst up to the particle cap and returns
// how many it made.
func spawnBurst(ecs *ecs.ECS, burst []gameplay.Particle, live int, c color.RGBA) int {
	n := 0
	for _, p := range burst {
		if live+n >= cfg.Emission.MaxParticles {
			break
		}
		factory.SpawnParticle(ecs, p.X, p.Y, c)
		n++
	}
	return n
}

// spriteCenter is the center of the drawn sprite, which sits offset from
// the collision body.
func spriteCenter(obj *components.ObjectData) (float64, float64) {
	return obj.X - cfg.Player.BodyOffsetX + cfg.Player.SpriteWidth/2,
		obj.Y - cfg.Player.BodyOffsetY + cfg.Player.SpriteHeight/2
}

// clearParticles removes every live particle.
func clearParticles(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry
	tags.Particle.Each(ecs.World, func(e *donburi.Entry) {
		toRemove = append(toRemove, e)
	})
	for _, e := range toRemove {
		e.Remove()
	}
}

// splatBurst scatters one drip-colored burst where the player was hit.
func splatBurst(ecs *ecs.ECS, x, y float64) {
	_, burst := emitter.Drip(gameplay.Schedule{}, 0, x, y)
	live := 0
	tags.Particle.Each(ecs.World, func(*donburi.Entry) { live++ })
	spawnBurst(ecs, burst, live, cfg.Emission.DripColor)
}
