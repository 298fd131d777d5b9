package factory

import (
	"math"

	"github.com/automoto/squishroom/archetypes"
	"github.com/automoto/squishroom/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the collision space for a room of the given world size.
func CreateSpace(ecs *ecs.ECS, width, height float64, cellSize int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(int(math.Ceil(width)), int(math.Ceil(height)), cellSize, cellSize)
	components.Space.Set(space, spaceData)
	return space
}

// addToSpace registers obj with the current space, if one exists.
func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
