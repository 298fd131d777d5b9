package components

import (
	"github.com/automoto/squishroom/assets/animations"
	"github.com/automoto/squishroom/shared/gameplay"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	Key              gameplay.AnimKey
	CurrentAnimation *animations.Animation
	Animations       map[gameplay.AnimKey]*animations.Animation
}

// Playing reports whether a one-shot animation has frames left.
func (a *AnimationData) Playing() bool {
	return a.CurrentAnimation != nil && !a.CurrentAnimation.Looped
}

// SetAnimation switches to key and restarts it. Same-key calls are ignored.
func (a *AnimationData) SetAnimation(key gameplay.AnimKey) {
	if a.Key == key && a.CurrentAnimation != nil {
		return
	}

	anim, ok := a.Animations[key]
	if !ok {
		if a.Animations == nil {
			a.Animations = make(map[gameplay.AnimKey]*animations.Animation)
		}
		anim = animations.ForKey(key)
		a.Animations[key] = anim
	}
	a.Key = key
	a.CurrentAnimation = anim
	a.CurrentAnimation.Restart()
}

var Animation = donburi.NewComponentType[AnimationData]()
