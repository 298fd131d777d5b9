package factory

import (
	"github.com/automoto/squishroom/archetypes"
	"github.com/automoto/squishroom/components"
	cfg "github.com/automoto/squishroom/config"
	"github.com/automoto/squishroom/shared/gameplay"
	"github.com/automoto/squishroom/shared/level"
	"github.com/automoto/squishroom/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer creates the player with its body centered on spawn.
func CreatePlayer(ecs *ecs.ECS, spawn level.Point) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := cfg.Player.BodyWidth, cfg.Player.BodyHeight
	x, y := BodyOrigin(spawn)
	obj := resolv.NewObject(x, y, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Player.SetValue(player, components.PlayerData{
		State: gameplay.PlayerState{
			X:         x,
			Y:         y,
			Animation: gameplay.AnimIdle,
		},
		Spawn: spawn,
	})

	anim := components.Animation.Get(player)
	anim.SetAnimation(gameplay.AnimIdle)

	return player
}

// BodyOrigin is the top-left of a player body centered on p.
func BodyOrigin(p level.Point) (float64, float64) {
	return p.X - cfg.Player.BodyWidth/2, p.Y - cfg.Player.BodyHeight/2
}
