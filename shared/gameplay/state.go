package gameplay

// WallSide is the wall the player is sliding against.
type WallSide int

const (
	WallNone WallSide = iota
	WallLeft
	WallRight
)

func (s WallSide) String() string {
	switch s {
	case WallLeft:
		return "left"
	case WallRight:
		return "right"
	default:
		return "none"
	}
}

// PlayerState is the kinematic snapshot of the player for one frame.
// Negative VelocityY points up.
type PlayerState struct {
	X, Y      float64
	VelocityX float64
	VelocityY float64

	OnGround      bool
	IsDripping    bool
	IsWallSliding bool
	WallSide      WallSide
	Animation     AnimKey

	// WallJumpLock counts down the steps left before horizontal control
	// may override a wall-jump launch.
	WallJumpLock int

	// JustLanded is set by the collision pass on the frame ground contact
	// begins and is only meaningful for that frame's evaluation.
	JustLanded bool
}

// Input is the player's intent for one frame. Pressed/Released fields are
// edges; Left, Right and JumpHeld are levels.
type Input struct {
	Left  bool
	Right bool

	JumpPressed  bool
	UpPressed    bool
	JumpReleased bool
	UpReleased   bool
	JumpHeld     bool

	DownPressed bool
}

// JumpIntentPressed reports a new press of either jump binding.
func (in Input) JumpIntentPressed() bool { return in.JumpPressed || in.UpPressed }

// JumpIntentReleased reports a release of either jump binding.
func (in Input) JumpIntentReleased() bool { return in.JumpReleased || in.UpReleased }

// Horizontal returns -1, 0 or 1. Left wins when both directions are held.
func (in Input) Horizontal() float64 {
	switch {
	case in.Left:
		return -1
	case in.Right:
		return 1
	}
	return 0
}

// Contacts are the wall contact signals reported by the physics host.
// Blocked is the persistent contact signal; Touching may flicker on corner
// and seam frames. The two are kept separate on purpose.
type Contacts struct {
	BlockedLeft   bool
	BlockedRight  bool
	TouchingLeft  bool
	TouchingRight bool
}
