package gameplay

// Movement constants in world units per second.
const (
	JumpVelocity  = -420.0
	JumpCutFactor = 0.5
	DripVelocity  = 720.0
	DripVelocityX = 0.0
)

// ShouldJump reports whether a grounded jump starts this frame.
func ShouldJump(jumpPressed, upPressed, onGround bool) bool {
	return (jumpPressed || upPressed) && onGround
}

// ShouldCutJump reports whether a released jump should shorten the rise.
// Only strictly upward motion is cut.
func ShouldCutJump(jumpReleased, upReleased bool, velocityY float64) bool {
	return (jumpReleased || upReleased) && velocityY < 0
}

// CutJumpVelocity halves the current vertical velocity.
func CutJumpVelocity(velocityY float64) float64 {
	return velocityY * JumpCutFactor
}

// ShouldStartDrip reports whether fast-fall starts. Never from the ground.
func ShouldStartDrip(dripPressed, onGround bool) bool {
	return dripPressed && !onGround
}

// ShouldEndDrip reports whether fast-fall ends. Ground contact always ends it.
func ShouldEndDrip(onGround bool) bool {
	return onGround
}
