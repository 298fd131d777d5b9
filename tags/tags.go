package tags

import "github.com/yohamta/donburi"

var (
	Player       = donburi.NewTag().SetName("Player")
	Wall         = donburi.NewTag().SetName("Wall")
	ThinPlatform = donburi.NewTag().SetName("ThinPlatform")
	Hazard       = donburi.NewTag().SetName("Hazard")
	Exit         = donburi.NewTag().SetName("Exit")
	Particle     = donburi.NewTag().SetName("Particle")
)

// Resolv tags for physics collision
const (
	ResolvSolid    = "solid"
	ResolvPlatform = "platform"
	ResolvHazard   = "hazard"
	ResolvExit     = "exit"
	ResolvPlayer   = "Player"
)
