package systems

import (
	"github.com/automoto/squishroom/components"
	cfg "github.com/automoto/squishroom/config"
	"github.com/automoto/squishroom/shared/gameplay"
	"github.com/automoto/squishroom/shared/level"
	"github.com/automoto/squishroom/systems/factory"
	"github.com/automoto/squishroom/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// BuildRoom creates the collision space and bodies for the level's current
// room.
func BuildRoom(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	room := components.Level.Get(levelEntry).Current
	factory.CreateSpace(ecs, room.Width, room.Height, int(cfg.C.TileSize))
	factory.CreateRoomGeometry(ecs, room)
}

// LoadRoom replaces the current room with the room at index. The player
// keeps its state but moves to the new spawn with zero velocity.
func LoadRoom(ecs *ecs.ECS, index int) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	l := components.Level.Get(levelEntry)
	if index < 0 || index >= len(l.Rooms) {
		logger.Warn("room index out of range", "index", index, "rooms", len(l.Rooms))
		return
	}

	clearRoom(ecs)
	factory.SelectRoom(l, index)
	BuildRoom(ecs)
	components.LevelComplete.SetValue(levelEntry, components.LevelCompleteData{})

	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		placePlayer(ecs, playerEntry, l.Current.Spawn)
	}
	SnapCamera(ecs)

	logger.Info("room loaded", "index", index, "name", RoomName(l))
}

// RoomName returns the current room's display name.
func RoomName(l *components.LevelData) string {
	if l.Index < len(l.Names) && l.Names[l.Index] != "" {
		return l.Names[l.Index]
	}
	return "room"
}

// clearRoom removes the room's bodies, its space and any live particles.
func clearRoom(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry
	collect := func(e *donburi.Entry) {
		toRemove = append(toRemove, e)
	}
	tags.Wall.Each(ecs.World, collect)
	tags.ThinPlatform.Each(ecs.World, collect)
	tags.Hazard.Each(ecs.World, collect)
	tags.Exit.Each(ecs.World, collect)
	components.Space.Each(ecs.World, collect)

	for _, e := range toRemove {
		e.Remove()
	}
	clearParticles(ecs)
}

// placePlayer moves the player body into the current space at spawn and
// clears everything tied to the previous room's position.
func placePlayer(ecs *ecs.ECS, e *donburi.Entry, spawn level.Point) {
	player := components.Player.Get(e)
	obj := components.Object.Get(e)

	x, y := factory.BodyOrigin(spawn)
	player.Spawn = spawn
	player.State.X, player.State.Y = x, y
	player.State.VelocityX, player.State.VelocityY = 0, 0
	player.State.OnGround = false
	player.State.JustLanded = false
	player.State.WallJumpLock = 0
	player.WasOnGround = false
	player.Contacts = gameplay.Contacts{}

	obj.X, obj.Y = x, y
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj.Object)
	}

	components.Emission.SetValue(e, components.EmissionData{})
}

// currentRoom returns the parsed geometry of the active room.
func currentRoom(ecs *ecs.ECS) *level.Data {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return nil
	}
	return &components.Level.Get(levelEntry).Current
}
