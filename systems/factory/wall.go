package factory

import (
	"github.com/automoto/squishroom/archetypes"
	"github.com/automoto/squishroom/components"
	"github.com/automoto/squishroom/shared/level"
	"github.com/automoto/squishroom/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall creates one solid body for a merged wall segment.
func CreateWall(ecs *ecs.ECS, seg level.WallSegment) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	obj := resolv.NewObject(seg.Left(), seg.Top(), seg.W, seg.H, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, seg.W, seg.H))
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return wall
}
