package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2
	Shake    math.Vec2 // screen shake offset, applied at draw time only
	Parallax math.Vec2 // decal layer drift for the current frame
}

var Camera = donburi.NewComponentType[CameraData]()
