package gameplay

import "testing"

func TestResolveWallContacts(t *testing.T) {
	tests := []struct {
		name     string
		c        Contacts
		movingUp bool
		want     WallContacts
	}{
		{"blocked left", Contacts{BlockedLeft: true, TouchingLeft: true}, false, WallContacts{Left: true}},
		{"blocked right falling", Contacts{BlockedRight: true}, false, WallContacts{Right: true}},
		{"touching only falling", Contacts{TouchingLeft: true}, false, WallContacts{}},
		{"touching only rising", Contacts{TouchingLeft: true}, true, WallContacts{Left: true}},
		{"none", Contacts{}, true, WallContacts{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveWallContacts(tt.c, tt.movingUp); got != tt.want {
				t.Errorf("ResolveWallContacts() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestShouldWallSlide(t *testing.T) {
	left := WallContacts{Left: true}
	tests := []struct {
		name           string
		onGround, drip bool
		wc             WallContacts
		pressL, pressR bool
		want           bool
	}{
		{"pressing into left wall", false, false, left, true, false, true},
		{"pressing away", false, false, left, false, true, false},
		{"not pressing", false, false, left, false, false, false},
		{"grounded", true, false, left, true, false, false},
		{"dripping", false, true, left, true, false, false},
		{"no contact", false, false, WallContacts{}, true, false, false},
		{"right wall", false, false, WallContacts{Right: true}, false, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldWallSlide(tt.onGround, tt.drip, tt.wc, tt.pressL, tt.pressR); got != tt.want {
				t.Errorf("ShouldWallSlide() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWallSlideSide(t *testing.T) {
	both := WallContacts{Left: true, Right: true}
	if got := WallSlideSide(both, true, true); got != WallLeft {
		t.Errorf("WallSlideSide(both) = %v, want left", got)
	}
	if got := WallSlideSide(both, false, true); got != WallRight {
		t.Errorf("WallSlideSide(right) = %v, want right", got)
	}
	if got := WallSlideSide(WallContacts{}, true, false); got != WallNone {
		t.Errorf("WallSlideSide(none) = %v, want none", got)
	}
}

func TestWallSlideVelocityY(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{500, 90},
		{120, 90},
		{90, 90},
		{40, 40},
		{0, 0},
		{-200, -200},
	}
	for _, tt := range tests {
		if got := WallSlideVelocityY(tt.in); got != tt.want {
			t.Errorf("WallSlideVelocityY(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestShouldWallSlideJump(t *testing.T) {
	tests := []struct {
		name                 string
		sliding              bool
		side                 WallSide
		jump, pressL, pressR bool
		buffered             bool
		want                 bool
	}{
		{"jump press on left", true, WallLeft, true, false, false, false, true},
		{"pressing opposite of left", true, WallLeft, false, false, true, false, true},
		{"pressing opposite of right", true, WallRight, false, true, false, false, true},
		{"pressing into wall", true, WallLeft, false, true, false, false, false},
		{"buffered latch", true, WallRight, false, false, false, true, true},
		{"not sliding", false, WallLeft, true, false, false, false, false},
		{"no side", true, WallNone, true, false, false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShouldWallSlideJump(tt.sliding, tt.side, tt.jump, tt.pressL, tt.pressR, tt.buffered)
			if got != tt.want {
				t.Errorf("ShouldWallSlideJump() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWallJumpVelocityX(t *testing.T) {
	if got := WallJumpVelocityX(WallLeft); got != 120 {
		t.Errorf("WallJumpVelocityX(left) = %v, want 120", got)
	}
	if got := WallJumpVelocityX(WallRight); got != -120 {
		t.Errorf("WallJumpVelocityX(right) = %v, want -120", got)
	}
	if got := WallJumpVelocityX(WallNone); got != 0 {
		t.Errorf("WallJumpVelocityX(none) = %v, want 0", got)
	}
}

// An upward slide along a left wall built from stacked bodies loses the
// blocked signal for one frame at the seam. The slide must hold through it.
func TestWallSlideHoldsAcrossSeam(t *testing.T) {
	frames := []struct {
		vy      float64
		blocked bool
	}{
		{-220, true},
		{-200, true},
		{-180, false},
		{-160, true},
		{-140, true},
	}

	s := PlayerState{X: 20, Y: 100}
	in := Input{Left: true}
	for i, f := range frames {
		s.VelocityY = f.vy
		c := Contacts{BlockedLeft: f.blocked, TouchingLeft: true}

		r := Step(s, in, c)
		s = r.State

		if !s.IsWallSliding || s.WallSide != WallLeft {
			t.Fatalf("frame %d: sliding = %v side = %v, want true left", i, s.IsWallSliding, s.WallSide)
		}
		if s.VelocityY != f.vy {
			t.Errorf("frame %d: vy = %v, want %v", i, s.VelocityY, f.vy)
		}
		if s.VelocityX != 0 {
			t.Errorf("frame %d: vx = %v, want 0", i, s.VelocityX)
		}
		if r.SlideStarted != (i == 0) {
			t.Errorf("frame %d: SlideStarted = %v", i, r.SlideStarted)
		}
	}
}
