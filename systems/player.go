package systems

import (
	"github.com/automoto/squishroom/components"
	cfg "github.com/automoto/squishroom/config"
	"github.com/automoto/squishroom/shared/gameplay"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer resolves the movement mode for this frame from input and the
// contacts reported by the previous collision pass.
func UpdatePlayer(ecs *ecs.ECS) {
	if levelIsComplete(ecs) {
		return
	}
	input := getOrCreateInput(ecs)
	intent := PlayerIntent(input)

	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		r := gameplay.Step(player.State, intent, player.Contacts)
		player.State = r.State

		if r.Jumped || r.WallJumped {
			TriggerSquashStretch(e, cfg.SquashStretch.JumpScaleX, cfg.SquashStretch.JumpScaleY)
		}
		if r.DripStarted {
			logger.Debug("drip started", "x", player.State.X, "y", player.State.Y)
		}
	})
}
