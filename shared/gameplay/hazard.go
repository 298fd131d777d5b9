package gameplay

// SplatScale is the scale the player snaps to on a hazard hit before easing
// back to 1.
const SplatScale = 2.0

// HazardReset is the bundle applied to the player on a hazard hit.
type HazardReset struct {
	IsDripping  bool
	WasOnGround bool
	VelocityX   float64
	VelocityY   float64
	Scale       float64
}

// ShouldTriggerHazard guards hazard handling. A completed level and a
// missing player both ignore the hit.
func ShouldTriggerHazard(isComplete, hasPlayer bool) bool {
	return !isComplete && hasPlayer
}

// HazardStateReset returns the reset bundle. It is the same on every call.
func HazardStateReset() HazardReset {
	return HazardReset{Scale: SplatScale}
}

// ApplyHazardReset returns s moved to spawn with the reset bundle applied.
// Slide and contact flags are cleared with it so the respawn frame starts
// from a neutral airborne state.
func ApplyHazardReset(s PlayerState, spawnX, spawnY float64) PlayerState {
	r := HazardStateReset()
	s.X, s.Y = spawnX, spawnY
	s.VelocityX, s.VelocityY = r.VelocityX, r.VelocityY
	s.IsDripping = r.IsDripping
	s.IsWallSliding = false
	s.WallSide = WallNone
	s.WallJumpLock = 0
	s.OnGround = false
	s.JustLanded = false
	return s
}
