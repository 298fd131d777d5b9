package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// Bottom is the world Y of the body's lower edge.
func (o ObjectData) Bottom() float64 { return o.Y + o.H }

// CenterX is the world X of the body's center.
func (o ObjectData) CenterX() float64 { return o.X + o.W/2 }

var Object = donburi.NewComponentType[ObjectData]()

// Space holds the room's broad-phase collision space.
var Space = donburi.NewComponentType[resolv.Space]()
