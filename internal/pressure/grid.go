package pressure

// Grid is a rectangular, row-major matrix of non-negative sensor readings.
// Callers must treat a Grid as immutable once passed to Analyze.
type Grid [][]int

// NewGrid allocates a zeroed grid with the given dimensions.
func NewGrid(rows, cols int) Grid {
	g := make(Grid, rows)
	for r := range g {
		g[r] = make([]int, cols)
	}
	return g
}

// Dims returns the number of rows and columns. A grid with no rows has
// zero columns.
func (g Grid) Dims() (rows, cols int) {
	rows = len(g)
	if rows > 0 {
		cols = len(g[0])
	}
	return rows, cols
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for r, row := range g {
		out[r] = make([]int, len(row))
		copy(out[r], row)
	}
	return out
}

// Sum returns the total pressure over all cells.
func (g Grid) Sum() int {
	total := 0
	for _, row := range g {
		for _, v := range row {
			total += v
		}
	}
	return total
}

// Max returns the largest cell value, or 0 for an empty grid.
func (g Grid) Max() int {
	max := 0
	for _, row := range g {
		for _, v := range row {
			if v > max {
				max = v
			}
		}
	}
	return max
}

// rowSums returns the per-row pressure totals as floats, for use as
// weights in centroid calculations.
func (g Grid) rowSums() []float64 {
	sums := make([]float64, len(g))
	for r, row := range g {
		s := 0
		for _, v := range row {
			s += v
		}
		sums[r] = float64(s)
	}
	return sums
}

// colSums returns the per-column pressure totals as floats.
func (g Grid) colSums() []float64 {
	_, cols := g.Dims()
	sums := make([]float64, cols)
	for _, row := range g {
		for c, v := range row {
			sums[c] += float64(v)
		}
	}
	return sums
}

// rectangular reports whether every row has the same length and the grid
// has at least one cell.
func (g Grid) rectangular() bool {
	rows, cols := g.Dims()
	if rows == 0 || cols == 0 {
		return false
	}
	for _, row := range g {
		if len(row) != cols {
			return false
		}
	}
	return true
}
