package factory

import (
	"github.com/automoto/squishroom/archetypes"
	"github.com/automoto/squishroom/components"
	cfg "github.com/automoto/squishroom/config"
	"github.com/automoto/squishroom/shared/decor"
	"github.com/automoto/squishroom/shared/level"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel creates the level entity holding every room and selects the
// room at index. Out-of-range indexes fall back to the first room.
func CreateLevel(ecs *ecs.ECS, rooms []level.Grid, names []string, index int) *donburi.Entry {
	lvl := archetypes.Level.Spawn(ecs)

	if index < 0 || index >= len(rooms) {
		index = 0
	}

	levelData := &components.LevelData{
		Rooms: rooms,
		Names: names,
	}
	SelectRoom(levelData, index)
	components.Level.Set(lvl, levelData)

	return lvl
}

// SelectRoom parses room index into the level data and places its decals.
func SelectRoom(l *components.LevelData, index int) {
	l.Index = index
	grid := l.Rooms[index]
	l.Current = level.Parse(grid, cfg.C.TileSize)
	l.Decals = decor.Decals(grid, cfg.C.TileSize, index)
}

// CreateRoomGeometry spawns the collision bodies for the parsed room.
func CreateRoomGeometry(ecs *ecs.ECS, data level.Data) {
	for _, seg := range data.Walls {
		CreateWall(ecs, seg)
	}
	for _, p := range data.ThinPlatforms {
		CreateThinPlatform(ecs, p)
	}
	for _, p := range data.Hazards {
		CreateHazard(ecs, p)
	}
	if data.HasExit() {
		CreateExit(ecs, *data.Exit)
	}
}
