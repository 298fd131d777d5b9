package gameplay

// AnimKey names a player animation.
type AnimKey string

const (
	AnimIdle      AnimKey = "idle"
	AnimRun       AnimKey = "run"
	AnimJump      AnimKey = "jump"
	AnimFall      AnimKey = "fall"
	AnimLand      AnimKey = "land"
	AnimWallSlide AnimKey = "wallSlide"
)

// AnimationInput is the post-collision snapshot the selector reads.
type AnimationInput struct {
	Current        AnimKey
	CurrentPlaying bool
	OnGround       bool
	Moving         bool
	VelocityY      float64
	JustLanded     bool
	WallSliding    bool
}

// NextAnimationKey picks the animation by priority. A playing land is never
// interrupted; landing beats sliding, sliding beats airborne, airborne beats
// ground motion. Zero vertical speed in the air selects jump.
func NextAnimationKey(in AnimationInput) AnimKey {
	if in.Current == AnimLand && in.CurrentPlaying {
		return AnimLand
	}
	if in.JustLanded {
		return AnimLand
	}
	if in.WallSliding {
		return AnimWallSlide
	}
	if !in.OnGround {
		if in.VelocityY > 0 {
			return AnimFall
		}
		return AnimJump
	}
	if in.Moving {
		return AnimRun
	}
	return AnimIdle
}

// ShouldChangeAnimation reports whether the key differs from the current one.
func ShouldChangeAnimation(current, next AnimKey) bool {
	return current != next
}
