package gameplay

import "math"

// Source yields uniform values in [0,1). *rand.Rand from math/rand/v2
// satisfies it.
type Source interface {
	Float64() float64
}

// Emission constants. Times are milliseconds, offsets world units.
const (
	EmitIntervalMin   = 95.0
	EmitIntervalRange = 50.0

	JitterXMin   = -4.0
	JitterXRange = 8.0
	JitterYMin   = -1.0
	JitterYRange = 3.0

	MinParticles   = 2
	ParticleSpread = 3

	TrailOffset  = 8.0
	TrailYOffset = 15.0
)

// Schedule is the next emission time of one stream.
type Schedule struct {
	NextAt float64
}

// Due reports whether the stream fires at now.
func (s Schedule) Due(now float64) bool { return ShouldEmit(now, s.NextAt) }

// ShouldEmit reports whether now has reached the scheduled time.
func ShouldEmit(now, nextAt float64) bool {
	return now >= nextAt
}

// NextEmitTime draws the next fire time in [now+95, now+145).
func NextEmitTime(src Source, now float64) float64 {
	return now + EmitIntervalMin + src.Float64()*EmitIntervalRange
}

// JitterX draws a particle's horizontal offset in [-4, 4).
func JitterX(src Source) float64 { return JitterXMin + src.Float64()*JitterXRange }

// JitterY draws a particle's vertical offset in [-1, 2).
func JitterY(src Source) float64 { return JitterYMin + src.Float64()*JitterYRange }

// ParticleCount draws a burst size of 2, 3 or 4.
func ParticleCount(src Source) int {
	return MinParticles + int(math.Floor(src.Float64()*ParticleSpread))
}

// TrailOffsetX places the trail behind the direction of travel.
func TrailOffsetX(velocityX float64) float64 {
	if velocityX >= 0 {
		return -TrailOffset
	}
	return TrailOffset
}

// TrailEmitY is the trail's vertical emission point.
func TrailEmitY(baseY float64) float64 {
	return baseY + TrailYOffset
}

// Particle is one emitted particle position.
type Particle struct {
	X, Y float64
}

// Emitter draws bursts for the drip and trail streams from one Source.
type Emitter struct {
	src Source
}

// NewEmitter returns an Emitter drawing from src.
func NewEmitter(src Source) *Emitter {
	return &Emitter{src: src}
}

// Drip fires the drip stream around (x, y) if due. It returns the updated
// schedule and the burst, which is nil when the stream did not fire.
func (e *Emitter) Drip(s Schedule, now, x, y float64) (Schedule, []Particle) {
	if !s.Due(now) {
		return s, nil
	}
	return e.fire(now, x, y)
}

// Trail fires the trail stream behind a player at (x, baseY) moving at
// velocityX.
func (e *Emitter) Trail(s Schedule, now, x, baseY, velocityX float64) (Schedule, []Particle) {
	if !s.Due(now) {
		return s, nil
	}
	return e.fire(now, x+TrailOffsetX(velocityX), TrailEmitY(baseY))
}

func (e *Emitter) fire(now, x, y float64) (Schedule, []Particle) {
	next := Schedule{NextAt: NextEmitTime(e.src, now)}
	n := ParticleCount(e.src)
	burst := make([]Particle, 0, n)
	for range n {
		burst = append(burst, Particle{X: x + JitterX(e.src), Y: y + JitterY(e.src)})
	}
	return next, burst
}
