package systems

import (
	"github.com/automoto/squishroom/components"
	"github.com/automoto/squishroom/shared/gamemath"
	"github.com/automoto/squishroom/shared/gameplay"
	"github.com/automoto/squishroom/systems/factory"
	"github.com/automoto/squishroom/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHazards resets the player on hazard contact and clears the room on
// exit contact. Both are ignored once the room is complete.
func UpdateHazards(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !gameplay.ShouldTriggerHazard(levelIsComplete(ecs), ok) {
		return
	}
	obj := components.Object.Get(playerEntry)

	if overlapsTagged(obj.Object, tags.ResolvHazard) {
		hitHazard(ecs, playerEntry)
		return
	}
	if overlapsTagged(obj.Object, tags.ResolvExit) {
		CompleteRoom(ecs)
	}
}

// overlapsTagged reports whether obj intersects any body carrying tag.
func overlapsTagged(obj *resolv.Object, tag string) bool {
	check := obj.Check(0, 0, tag)
	if check == nil {
		return false
	}
	for _, o := range check.ObjectsByTags(tag) {
		if gamemath.Overlaps(obj.X, obj.Y, obj.W, obj.H, o.X, o.Y, o.W, o.H) {
			return true
		}
	}
	return false
}

// hitHazard respawns the player and announces the hit.
func hitHazard(ecs *ecs.ECS, e *donburi.Entry) {
	x, y := spriteCenter(components.Object.Get(e))
	RespawnPlayer(e)
	HazardHit.Publish(ecs.World, HazardHitEvent{
		X:        x,
		Y:        y,
		Respawns: components.Player.Get(e).Respawns,
	})
}

// RespawnPlayer applies the hazard reset: the player returns to the room's
// spawn with zero velocity and snaps to the splat scale.
func RespawnPlayer(e *donburi.Entry) {
	player := components.Player.Get(e)
	obj := components.Object.Get(e)

	x, y := factory.BodyOrigin(player.Spawn)
	reset := gameplay.HazardStateReset()
	player.State = gameplay.ApplyHazardReset(player.State, x, y)
	player.WasOnGround = reset.WasOnGround
	player.Contacts = gameplay.Contacts{}
	player.Respawns++

	obj.X, obj.Y = x, y
	obj.Update()

	TriggerSplat(e, reset.Scale)
}
