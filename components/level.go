package components

import (
	"github.com/automoto/squishroom/shared/decor"
	"github.com/automoto/squishroom/shared/level"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Rooms   []level.Grid
	Names   []string
	Index   int
	Current level.Data
	Decals  []decor.Placement
}

// IsFinal reports whether the current room is the last one.
func (l *LevelData) IsFinal() bool { return l.Index >= len(l.Rooms)-1 }

// Grid returns the glyph grid of the current room.
func (l *LevelData) Grid() level.Grid { return l.Rooms[l.Index] }

var Level = donburi.NewComponentType[LevelData]()
