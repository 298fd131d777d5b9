package components

import (
	"github.com/automoto/squishroom/shared/gameplay"
	"github.com/automoto/squishroom/shared/level"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	State    gameplay.PlayerState
	Contacts gameplay.Contacts

	WasOnGround  bool    // ground contact on the previous frame
	LandingSpeed float64 // downward speed at the last touchdown
	Spawn        level.Point
	Respawns     int
}

var Player = donburi.NewComponentType[PlayerData]()
