package gameplay

// RunSpeed is the horizontal speed under direct control.
const RunSpeed = 220.0

// Result is the outcome of one Step.
type Result struct {
	State PlayerState

	Jumped       bool
	WallJumped   bool
	JumpCut      bool
	DripStarted  bool
	DripEnded    bool
	SlideStarted bool
}

// Step resolves the movement mode for one frame. The order is fixed:
// drip end, horizontal control (skipped while a wall-jump lock runs), ground
// jump or cut, drip start, then the wall slide. Gravity and position
// integration belong to the host.
func Step(s PlayerState, in Input, c Contacts) Result {
	prev := s
	var r Result

	if s.IsDripping && ShouldEndDrip(s.OnGround) {
		s.IsDripping = false
		r.DripEnded = true
	}

	if s.OnGround {
		s.WallJumpLock = 0
	}
	if s.WallJumpLock > 0 {
		s.WallJumpLock--
	} else if !s.IsDripping {
		s.VelocityX = in.Horizontal() * RunSpeed
	}

	switch {
	case ShouldJump(in.JumpPressed, in.UpPressed, s.OnGround):
		s.VelocityY = JumpVelocity
		r.Jumped = true
	case ShouldCutJump(in.JumpReleased, in.UpReleased, s.VelocityY):
		s.VelocityY = CutJumpVelocity(s.VelocityY)
		r.JumpCut = true
	}

	if !s.IsDripping && ShouldStartDrip(in.DownPressed, s.OnGround) {
		s.IsDripping = true
		r.DripStarted = true
	}
	if s.IsDripping {
		s.VelocityX = DripVelocityX
		s.VelocityY = DripVelocity
	}

	stepWallSlide(&s, prev, in, c, &r)

	r.State = s
	return r
}

func stepWallSlide(s *PlayerState, prev PlayerState, in Input, c Contacts, r *Result) {
	// A slide held from the previous frame can exit before the new contact
	// check runs.
	if ShouldWallSlideJump(prev.IsWallSliding, prev.WallSide, in.JumpIntentPressed(), in.Left, in.Right, false) && !s.IsDripping {
		wallJump(s, prev.WallSide, r)
		return
	}

	wc := ResolveWallContacts(c, s.VelocityY < 0)
	if !ShouldWallSlide(s.OnGround, s.IsDripping, wc, in.Left, in.Right) {
		s.IsWallSliding = false
		s.WallSide = WallNone
		return
	}

	side := WallSlideSide(wc, in.Left, in.Right)
	justStarted := !prev.IsWallSliding
	if justStarted {
		r.SlideStarted = true
	}
	// Jump held as the slide latches launches at once, but only when the
	// latch happens on the way down so a held jump cannot climb a wall.
	buffered := in.JumpHeld && justStarted && s.VelocityY >= 0
	if ShouldWallSlideJump(true, side, false, false, false, buffered) {
		wallJump(s, side, r)
		return
	}

	s.IsWallSliding = true
	s.WallSide = side
	s.WallJumpLock = 0
	s.VelocityX = 0
	s.VelocityY = WallSlideVelocityY(s.VelocityY)
}

func wallJump(s *PlayerState, side WallSide, r *Result) {
	s.VelocityX = WallJumpVelocityX(side)
	s.VelocityY = JumpVelocity
	s.IsWallSliding = false
	s.WallSide = WallNone
	s.WallJumpLock = WallJumpLockFrames
	r.WallJumped = true
}
