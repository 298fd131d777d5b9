package gameplay

const (
	WallSlideMaxSpeed   = 90.0
	WallJumpLaunchSpeed = 120.0

	// WallJumpLockFrames is how many steps after a wall jump the launch
	// speed holds before horizontal control returns.
	WallJumpLockFrames = 10
)

// WallContacts is the resolved per-side wall contact for one frame.
type WallContacts struct {
	Left  bool
	Right bool
}

// ResolveWallContacts combines the blocked and touching signals.
// A blocked side always counts. A touching side only counts while the body
// moves up, which covers the frame where an upward slide crosses the seam
// between two stacked wall bodies and the blocked flag drops for a tick.
func ResolveWallContacts(c Contacts, movingUp bool) WallContacts {
	return WallContacts{
		Left:  c.BlockedLeft || (c.TouchingLeft && movingUp),
		Right: c.BlockedRight || (c.TouchingRight && movingUp),
	}
}

// ShouldWallSlide reports whether the slide mode is active: airborne, not
// dripping, and pressing into a wall in contact.
func ShouldWallSlide(onGround, isDripping bool, wc WallContacts, pressingLeft, pressingRight bool) bool {
	if onGround || isDripping {
		return false
	}
	return (wc.Left && pressingLeft) || (wc.Right && pressingRight)
}

// WallSlideSide picks the slide side. Left wins when both qualify.
func WallSlideSide(wc WallContacts, pressingLeft, pressingRight bool) WallSide {
	switch {
	case wc.Left && pressingLeft:
		return WallLeft
	case wc.Right && pressingRight:
		return WallRight
	}
	return WallNone
}

// WallSlideVelocityY clamps downward speed while sliding. Upward motion is
// left untouched.
func WallSlideVelocityY(velocityY float64) float64 {
	if velocityY > WallSlideMaxSpeed {
		return WallSlideMaxSpeed
	}
	return velocityY
}

// ShouldWallSlideJump reports whether an active slide exits with a launch.
// bufferedJump is jump held on the frame the slide latched.
func ShouldWallSlideJump(isSliding bool, side WallSide, jumpPressed, pressingLeft, pressingRight, bufferedJump bool) bool {
	if !isSliding || side == WallNone {
		return false
	}
	pressingOpposite := (side == WallLeft && pressingRight) || (side == WallRight && pressingLeft)
	return jumpPressed || pressingOpposite || bufferedJump
}

// WallJumpVelocityX launches away from the wall.
func WallJumpVelocityX(side WallSide) float64 {
	switch side {
	case WallLeft:
		return WallJumpLaunchSpeed
	case WallRight:
		return -WallJumpLaunchSpeed
	}
	return 0
}
