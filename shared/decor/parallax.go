package decor

import "github.com/automoto/squishroom/shared/gamemath"

// ParallaxOffset maps the player's distance from the room center through a
// damping factor and clamps it to [-maxOffset, maxOffset].
func ParallaxOffset(playerCoord, roomCenterCoord, factor, maxOffset float64) float64 {
	return gamemath.ClampSpeed((playerCoord-roomCenterCoord)*factor, maxOffset)
}
