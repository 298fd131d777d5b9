package gameplay

import "github.com/automoto/squishroom/shared/gamemath"

// Impact shake tuning. Speeds are the downward speed at landing.
const (
	ShakeMinImpactSpeed = 480.0
	ShakeMaxImpactSpeed = DripVelocity
	ShakeMinIntensity   = 2.0
	ShakeMaxIntensity   = 6.0
	ShakeDurationFrames = 10
)

// Shake is a camera shake request.
type Shake struct {
	Intensity float64
	Duration  int
}

// ShakeForImpact maps a landing speed to a shake. Soft landings return
// false. Intensity ramps linearly between the min and max impact speeds.
func ShakeForImpact(speed float64) (Shake, bool) {
	if speed < ShakeMinImpactSpeed {
		return Shake{}, false
	}
	t := gamemath.Clamp((speed-ShakeMinImpactSpeed)/(ShakeMaxImpactSpeed-ShakeMinImpactSpeed), 0, 1)
	return Shake{
		Intensity: gamemath.Lerp(ShakeMinIntensity, ShakeMaxIntensity, t),
		Duration:  ShakeDurationFrames,
	}, true
}
