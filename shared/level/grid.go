package level

// Grid is an ordered list of glyph rows. Rows may differ in length; reads
// outside the grid return Empty with ok=false.
type Grid []string

// Rows returns the number of rows.
func (g Grid) Rows() int { return len(g) }

// Cols returns the length of the widest row.
func (g Grid) Cols() int {
	cols := 0
	for _, row := range g {
		if len(row) > cols {
			cols = len(row)
		}
	}
	return cols
}

// RowLen returns the length of a single row, or 0 when out of range.
func (g Grid) RowLen(row int) int {
	if row < 0 || row >= len(g) {
		return 0
	}
	return len(g[row])
}

// At returns the glyph at (row, col).
func (g Grid) At(row, col int) (Glyph, bool) {
	if row < 0 || col < 0 || row >= len(g) || col >= len(g[row]) {
		return Empty, false
	}
	return Glyph(g[row][col]), true
}

// Is reports whether the cell at (row, col) exists and holds glyph want.
func (g Grid) Is(row, col int, want Glyph) bool {
	got, ok := g.At(row, col)
	return ok && got == want
}
