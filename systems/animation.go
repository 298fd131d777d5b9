package systems

import (
	"github.com/automoto/squishroom/components"
	"github.com/automoto/squishroom/shared/gameplay"
	"github.com/automoto/squishroom/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimation selects the player's animation after collisions have
// settled this frame's contacts.
func UpdateAnimation(ecs *ecs.ECS) {
	// Run follows held direction so pushing into a wall still runs.
	moving := PlayerIntent(getOrCreateInput(ecs)).Horizontal() != 0

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		anim := components.Animation.Get(e)
		s := &player.State

		next := gameplay.NextAnimationKey(gameplay.AnimationInput{
			Current:        anim.Key,
			CurrentPlaying: anim.Playing(),
			OnGround:       s.OnGround,
			Moving:         moving,
			VelocityY:      s.VelocityY,
			JustLanded:     s.JustLanded,
			WallSliding:    s.IsWallSliding,
		})

		if gameplay.ShouldChangeAnimation(anim.Key, next) {
			if anim.Key == gameplay.AnimIdle {
				StopIdleWobble(e)
			}
			anim.SetAnimation(next)
			if next == gameplay.AnimIdle {
				TriggerIdleWobble(e)
			}
		}
		s.Animation = anim.Key

		if anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update()
		}
	})
}
