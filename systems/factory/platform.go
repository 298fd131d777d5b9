package factory

import (
	"github.com/automoto/squishroom/archetypes"
	"github.com/automoto/squishroom/components"
	cfg "github.com/automoto/squishroom/config"
	"github.com/automoto/squishroom/shared/level"
	"github.com/automoto/squishroom/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Body proportions of the non-wall glyphs, as fractions of the tile.
const (
	platformHeightScale = 0.35
	hazardWidthScale    = 0.7
	hazardHeightScale   = 0.4
	exitWidthScale      = 0.8
	exitHeightScale     = 0.6
)

// CreateThinPlatform creates a one-way platform flush with the top of its
// cell. Whether it blocks is decided per contact by the collision system.
func CreateThinPlatform(ecs *ecs.ECS, p level.Point) *donburi.Entry {
	t := cfg.C.TileSize
	return createCellBody(ecs, archetypes.ThinPlatform.Spawn(ecs),
		p.X-t/2, p.Y-t/2, t, t*platformHeightScale, tags.ResolvPlatform)
}

// CreateHazard creates a hazard body resting on the floor of its cell.
func CreateHazard(ecs *ecs.ECS, p level.Point) *donburi.Entry {
	t := cfg.C.TileSize
	w, h := t*hazardWidthScale, t*hazardHeightScale
	return createCellBody(ecs, archetypes.Hazard.Spawn(ecs),
		p.X-w/2, p.Y+t/2-h, w, h, tags.ResolvHazard)
}

// CreateExit creates the room exit resting on the floor of its cell.
func CreateExit(ecs *ecs.ECS, p level.Point) *donburi.Entry {
	t := cfg.C.TileSize
	w, h := t*exitWidthScale, t*exitHeightScale
	return createCellBody(ecs, archetypes.Exit.Spawn(ecs),
		p.X-w/2, p.Y+t/2-h, w, h, tags.ResolvExit)
}

func createCellBody(ecs *ecs.ECS, e *donburi.Entry, x, y, w, h float64, tag string) *donburi.Entry {
	obj := resolv.NewObject(x, y, w, h, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = e

	components.Object.SetValue(e, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return e
}
