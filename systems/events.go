package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// HazardHitEvent is published when the player is reset to the spawn point,
// either by touching a hazard or by falling out of the room.
type HazardHitEvent struct {
	X, Y     float64 // sprite center at the moment of the hit
	Respawns int
}

// RoomClearedEvent is published once when the player reaches a room's exit.
type RoomClearedEvent struct {
	Index int
	Name  string
	Final bool
}

var (
	HazardHit   = events.NewEventType[HazardHitEvent]()
	RoomCleared = events.NewEventType[RoomClearedEvent]()
)

// SubscribeEvents wires the gameplay event handlers for one world.
func SubscribeEvents(e *ecs.ECS) {
	HazardHit.Subscribe(e.World, func(w donburi.World, ev HazardHitEvent) {
		logger.Debug("hazard hit", "x", ev.X, "y", ev.Y, "respawns", ev.Respawns)
		splatBurst(e, ev.X, ev.Y)
	})
	RoomCleared.Subscribe(e.World, func(w donburi.World, ev RoomClearedEvent) {
		logger.Info("room cleared", "index", ev.Index, "name", ev.Name, "final", ev.Final)
	})
}
