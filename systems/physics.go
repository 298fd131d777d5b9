package systems

import (
	"github.com/automoto/squishroom/components"
	cfg "github.com/automoto/squishroom/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// frameSeconds is the fixed simulation step.
func frameSeconds() float64 {
	return 1 / float64(cfg.C.TPS)
}

// UpdatePhysics integrates gravity into the player's vertical velocity.
// Must run BEFORE UpdatePlayer so the movement rules see this frame's speed.
func UpdatePhysics(ecs *ecs.ECS) {
	if levelIsComplete(ecs) {
		return
	}
	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		s := &components.Player.Get(e).State
		s.VelocityY = min(s.VelocityY+cfg.Physics.Gravity*frameSeconds(), cfg.Physics.MaxFallSpeed)
	})
}
