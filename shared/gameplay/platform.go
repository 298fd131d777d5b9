package gameplay

// ThinPlatformTolerance is how far below a platform top the player's bottom
// may sit and still land on it.
const ThinPlatformTolerance = 10.0

// ShouldThinPlatformCollide decides whether a one-way platform is solid for
// this contact. Dripping always passes through. Otherwise the player must be
// at or above the top (within tolerance) and not moving up.
func ShouldThinPlatformCollide(isDripping bool, playerBottom, platformTop, velocityY float64) bool {
	if isDripping {
		return false
	}
	return playerBottom <= platformTop+ThinPlatformTolerance && velocityY >= 0
}
