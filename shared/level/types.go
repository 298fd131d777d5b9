// Package level turns textual room grids into world geometry shared by the
// gameplay core and the engine host. It has no dependencies on ebitengine,
// donburi, or resolv.
package level

// Glyph is a single tile character in a room grid.
type Glyph byte

const (
	Wall         Glyph = '#'
	Empty        Glyph = '.'
	Spawn        Glyph = 'S'
	Exit         Glyph = 'E'
	ThinPlatform Glyph = '~'
	Hazard       Glyph = '^'
)

// Known reports whether g is one of the recognised glyphs. Unknown glyphs
// are inert everywhere.
func (g Glyph) Known() bool {
	switch g {
	case Wall, Empty, Spawn, Exit, ThinPlatform, Hazard:
		return true
	}
	return false
}

// Point is a world-space position, usually a tile center.
type Point struct {
	X, Y float64
}

// WallSegment is one vertical run of wall cells in a single column.
// X and Y are the rectangle center.
type WallSegment struct {
	X, Y float64
	W, H float64
	Col  int
	Row  int // top row of the run
	Len  int // run length in cells
}

// Left returns the x coordinate of the segment's left edge.
func (s WallSegment) Left() float64 { return s.X - s.W/2 }

// Top returns the y coordinate of the segment's top edge.
func (s WallSegment) Top() float64 { return s.Y - s.H/2 }

// Data holds all geometry derived from a room grid. It is immutable after
// Parse returns.
type Data struct {
	Width    float64
	Height   float64
	Rows     int
	Cols     int
	TileSize float64

	Spawn Point
	Exit  *Point

	Walls         []WallSegment
	ThinPlatforms []Point
	Hazards       []Point
}

// HasExit reports whether the room has a completion trigger.
func (d *Data) HasExit() bool { return d.Exit != nil }
