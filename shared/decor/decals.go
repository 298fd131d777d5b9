// Package decor places static background decorations. Placement is seeded
// purely by level index and cell coordinates so the same room always looks
// the same.
package decor

import (
	"math"

	"github.com/automoto/squishroom/shared/level"
)

// Decal colors.
const (
	ColorMoss uint32 = 0x2f4a2e
	ColorLeaf uint32 = 0x365637
)

const (
	includeChance  = 0.2
	jitterSpan     = 0.52 // centered, so at most 0.26 tile each way
	radiusMin      = 0.10
	radiusSpan     = 0.14
	alphaMin       = 0.045
	alphaSpan      = 0.05
	densityFactor  = 0.05
	minDecalBudget = 6
)

const (
	saltInclude uint32 = iota + 1
	saltJitterX
	saltJitterY
	saltRadius
	saltAlpha
	saltColor
)

// Placement is a single background decal.
type Placement struct {
	X, Y   float64
	Radius float64
	Alpha  float64
	Color  uint32
}

// MaxDecals is the density cap for a room of the given size.
func MaxDecals(rows, cols int) int {
	n := int(math.Floor(float64(rows*cols) * densityFactor))
	if n < minDecalBudget {
		return minDecalBudget
	}
	return n
}

// Decals returns the decorations for a room. Identical arguments always
// produce identical output.
func Decals(grid level.Grid, tileSize float64, levelIndex int) []Placement {
	rows := grid.Rows()
	cols := grid.Cols()
	limit := MaxDecals(rows, cols)

	var out []Placement
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if !isSafeDecalCell(grid, row, col) {
				continue
			}
			if random01(levelIndex, row, col, saltInclude) > includeChance {
				continue
			}

			jitterX := (random01(levelIndex, row, col, saltJitterX) - 0.5) * tileSize * jitterSpan
			jitterY := (random01(levelIndex, row, col, saltJitterY) - 0.5) * tileSize * jitterSpan

			color := ColorLeaf
			if random01(levelIndex, row, col, saltColor) > 0.5 {
				color = ColorMoss
			}

			out = append(out, Placement{
				X:      float64(col)*tileSize + tileSize/2 + jitterX,
				Y:      float64(row)*tileSize + tileSize/2 + jitterY,
				Radius: tileSize * (radiusMin + random01(levelIndex, row, col, saltRadius)*radiusSpan),
				Alpha:  alphaMin + random01(levelIndex, row, col, saltAlpha)*alphaSpan,
				Color:  color,
			})
			if len(out) == limit {
				return out
			}
		}
	}
	return out
}

// isSafeDecalCell reports whether a decal may sit in the cell: an empty
// interior cell with no hazard, spawn, or exit in its 3x3 neighborhood.
func isSafeDecalCell(grid level.Grid, row, col int) bool {
	if !grid.Is(row, col, level.Empty) {
		return false
	}
	if row <= 0 || col <= 0 || row >= grid.Rows()-1 || col >= grid.RowLen(row)-1 {
		return false
	}

	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			g, ok := grid.At(row+dy, col+dx)
			if !ok {
				continue
			}
			if g == level.Hazard || g == level.Spawn || g == level.Exit {
				return false
			}
		}
	}
	return true
}
