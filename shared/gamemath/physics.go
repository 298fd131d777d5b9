// Package gamemath holds small float helpers shared by the gameplay core and
// the engine host.
package gamemath

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Clamp constrains a value to the range [min, max].
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Lerp moves from a toward b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Overlaps reports whether two axis-aligned rectangles intersect with a
// positive area.
func Overlaps(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax < bx+bw && bx < ax+aw && ay < by+bh && by < ay+ah
}
