package level

import "sort"

type wallRun struct {
	col, top, length int
}

// Parse scans the grid in row-major order and builds the room geometry.
// Spawn and exit follow a last-one-wins policy. Vertically adjacent wall
// cells in a column are merged into a single segment.
func Parse(grid Grid, tileSize float64) Data {
	rows := grid.Rows()
	cols := grid.Cols()
	half := tileSize / 2

	data := Data{
		Width:    float64(cols) * tileSize,
		Height:   float64(rows) * tileSize,
		Rows:     rows,
		Cols:     cols,
		TileSize: tileSize,
		Spawn:    Point{X: half, Y: half},
	}

	// open[col] is the top row of the run currently growing in that column,
	// or -1 when there is none.
	open := make([]int, cols)
	for i := range open {
		open[i] = -1
	}
	var runs []wallRun

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			glyph, _ := grid.At(row, col)
			center := Point{
				X: float64(col)*tileSize + half,
				Y: float64(row)*tileSize + half,
			}

			if glyph != Wall && open[col] >= 0 {
				runs = append(runs, wallRun{col: col, top: open[col], length: row - open[col]})
				open[col] = -1
			}

			switch glyph {
			case Wall:
				if open[col] < 0 {
					open[col] = row
				}
			case Spawn:
				data.Spawn = center
			case Exit:
				exit := center
				data.Exit = &exit
			case ThinPlatform:
				data.ThinPlatforms = append(data.ThinPlatforms, center)
			case Hazard:
				data.Hazards = append(data.Hazards, center)
			}
		}
	}

	for col, top := range open {
		if top >= 0 {
			runs = append(runs, wallRun{col: col, top: top, length: rows - top})
		}
	}

	sort.Slice(runs, func(i, j int) bool {
		if runs[i].col != runs[j].col {
			return runs[i].col < runs[j].col
		}
		return runs[i].top < runs[j].top
	})

	if len(runs) > 0 {
		data.Walls = make([]WallSegment, 0, len(runs))
	}
	for _, r := range runs {
		data.Walls = append(data.Walls, WallSegment{
			X:   float64(r.col)*tileSize + half,
			Y:   (float64(r.top) + float64(r.length)/2) * tileSize,
			W:   tileSize,
			H:   float64(r.length) * tileSize,
			Col: r.col,
			Row: r.top,
			Len: r.length,
		})
	}

	return data
}
