package config

import "github.com/automoto/squishroom/shared/gameplay"

type AnimationDef struct {
	First int
	Last  int
	Step  int
	Speed int // ticks per frame
	Loop  bool
}

// PlayerAnimations maps each animation key to its frame definition. Land is
// the only one-shot; the selector holds it until it finishes.
var PlayerAnimations = map[gameplay.AnimKey]AnimationDef{
	gameplay.AnimIdle:      {First: 0, Last: 3, Step: 1, Speed: 10, Loop: true},
	gameplay.AnimRun:       {First: 0, Last: 5, Step: 1, Speed: 5, Loop: true},
	gameplay.AnimJump:      {First: 0, Last: 1, Step: 1, Speed: 8, Loop: true},
	gameplay.AnimFall:      {First: 0, Last: 1, Step: 1, Speed: 8, Loop: true},
	gameplay.AnimLand:      {First: 0, Last: 2, Step: 1, Speed: 2},
	gameplay.AnimWallSlide: {First: 0, Last: 3, Step: 1, Speed: 6, Loop: true},
}
