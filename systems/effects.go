package systems

import (
	"github.com/automoto/squishroom/components"
	"github.com/automoto/squishroom/config"
	"github.com/automoto/squishroom/shared/gameplay"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances the player's scale tweens (squash/stretch, splat)
func UpdateEffects(ecs *ecs.ECS) {
	updateSquashStretchEffects(ecs)
	updateSplatEffects(ecs)
}

// effectStepMs is one frame in tween time. Tween durations are milliseconds.
func effectStepMs() float32 {
	return float32(1000 / float64(config.C.TPS))
}

// updateSquashStretchEffects steps both axis sequences. A finished pulse
// hands over to the idle wobble when the idle animation is showing.
func updateSquashStretchEffects(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry
	step := effectStepMs()

	components.SquashStretch.Each(ecs.World, func(e *donburi.Entry) {
		ss := components.SquashStretch.Get(e)

		x, _, doneX := ss.X.Update(step)
		y, _, doneY := ss.Y.Update(step)
		ss.ScaleX, ss.ScaleY = float64(x), float64(y)

		if !doneX || !doneY {
			return
		}
		switch {
		case ss.Idle:
			ss.X.Reset()
			ss.Y.Reset()
		case isShowingIdle(e):
			*ss = idleWobble()
		default:
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		e.RemoveComponent(components.SquashStretch)
	}
}

func updateSplatEffects(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry
	step := effectStepMs()

	components.Splat.Each(ecs.World, func(e *donburi.Entry) {
		splat := components.Splat.Get(e)
		v, done := splat.Tween.Update(step)
		splat.Scale = float64(v)
		if done {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		e.RemoveComponent(components.Splat)
	}
}

// yoyo tweens from 1 to peak and back, each leg lasting ms.
func yoyo(peak, ms float64, out, back ease.TweenFunc) *gween.Sequence {
	return gween.NewSequence(
		gween.New(1, float32(peak), float32(ms), out),
		gween.New(float32(peak), 1, float32(ms), back),
	)
}

func idleWobble() components.SquashStretchData {
	ms := config.SquashStretch.IdleDurationMs
	return components.SquashStretchData{
		ScaleX: 1,
		ScaleY: 1,
		X:      yoyo(config.SquashStretch.IdleScaleX, ms, ease.InOutSine, ease.InOutSine),
		Y:      yoyo(config.SquashStretch.IdleScaleY, ms, ease.InOutSine, ease.InOutSine),
		Idle:   true,
	}
}

func setSquashStretch(entry *donburi.Entry, data components.SquashStretchData) {
	if !entry.HasComponent(components.SquashStretch) {
		entry.AddComponent(components.SquashStretch)
	}
	components.SquashStretch.SetValue(entry, data)
}

// TriggerSquashStretch starts a one-shot pulse, replacing any running
// pulse or idle wobble.
func TriggerSquashStretch(entry *donburi.Entry, scaleX, scaleY float64) {
	ms := config.SquashStretch.DurationMs
	setSquashStretch(entry, components.SquashStretchData{
		ScaleX: 1,
		ScaleY: 1,
		X:      yoyo(scaleX, ms, ease.OutQuad, ease.InQuad),
		Y:      yoyo(scaleY, ms, ease.OutQuad, ease.InQuad),
	})
}

// TriggerIdleWobble starts the looping idle breathing unless a pulse is
// still playing. The pulse hands over to the wobble when it ends.
func TriggerIdleWobble(entry *donburi.Entry) {
	if entry.HasComponent(components.SquashStretch) {
		return
	}
	setSquashStretch(entry, idleWobble())
}

// StopIdleWobble ends the idle wobble. One-shot pulses are left alone.
func StopIdleWobble(entry *donburi.Entry) {
	if !entry.HasComponent(components.SquashStretch) {
		return
	}
	if components.SquashStretch.Get(entry).Idle {
		entry.RemoveComponent(components.SquashStretch)
	}
}

// TriggerSplat snaps the entity to scale and eases it back to 1.
func TriggerSplat(entry *donburi.Entry, scale float64) {
	data := components.SplatData{
		Scale: scale,
		Tween: gween.New(float32(scale), 1, float32(config.SquashStretch.SplatSettleMs), ease.OutBack),
	}
	if !entry.HasComponent(components.Splat) {
		entry.AddComponent(components.Splat)
	}
	components.Splat.SetValue(entry, data)
}

// DrawScale is the combined sprite scale from every running effect.
func DrawScale(entry *donburi.Entry) (float64, float64) {
	sx, sy := 1.0, 1.0
	if entry.HasComponent(components.SquashStretch) {
		ss := components.SquashStretch.Get(entry)
		sx, sy = ss.ScaleX, ss.ScaleY
	}
	if entry.HasComponent(components.Splat) {
		s := components.Splat.Get(entry).Scale
		sx, sy = sx*s, sy*s
	}
	return sx, sy
}

func isShowingIdle(e *donburi.Entry) bool {
	return e.HasComponent(components.Animation) && components.Animation.Get(e).Key == gameplay.AnimIdle
}
