package pressure

// FilterNoise removes sensor noise from a raw pressure grid.
//
// Cells at or below threshold are zeroed, then a binary morphological
// opening (erosion followed by dilation, 3x3 fully-connected structuring
// element) is applied to the resulting mask. Cells whose mask survives the
// opening keep their thresholded value; everything else becomes 0. This
// drops isolated single-cell and thin-line noise that a value threshold
// alone would keep, without changing the magnitudes of surviving cells.
//
// An all-zero grid is returned as an unchanged copy.
func FilterNoise(g Grid, threshold int) Grid {
	if g.Max() == 0 {
		return g.Clone()
	}

	rows, cols := g.Dims()
	cleaned := NewGrid(rows, cols)
	mask := make([][]bool, rows)
	for r := 0; r < rows; r++ {
		mask[r] = make([]bool, cols)
		for c := 0; c < cols; c++ {
			if g[r][c] > threshold {
				cleaned[r][c] = g[r][c]
				mask[r][c] = true
			}
		}
	}

	opened := dilate(erode(mask))
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if !opened[r][c] {
				cleaned[r][c] = 0
			}
		}
	}
	return cleaned
}

// erode keeps a cell only if its full 3x3 neighborhood is set. Neighbors
// outside the grid count as unset, so blobs touching the border shrink.
func erode(mask [][]bool) [][]bool {
	rows := len(mask)
	cols := 0
	if rows > 0 {
		cols = len(mask[0])
	}
	out := make([][]bool, rows)
	for r := 0; r < rows; r++ {
		out[r] = make([]bool, cols)
		for c := 0; c < cols; c++ {
			if !mask[r][c] {
				continue
			}
			keep := true
			for dr := -1; dr <= 1 && keep; dr++ {
				for dc := -1; dc <= 1 && keep; dc++ {
					nr, nc := r+dr, c+dc
					if nr < 0 || nr >= rows || nc < 0 || nc >= cols || !mask[nr][nc] {
						keep = false
					}
				}
			}
			out[r][c] = keep
		}
	}
	return out
}

// dilate sets a cell if any cell in its 3x3 neighborhood is set.
func dilate(mask [][]bool) [][]bool {
	rows := len(mask)
	cols := 0
	if rows > 0 {
		cols = len(mask[0])
	}
	out := make([][]bool, rows)
	for r := 0; r < rows; r++ {
		out[r] = make([]bool, cols)
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if !mask[r][c] {
				continue
			}
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					nr, nc := r+dr, c+dc
					if nr >= 0 && nr < rows && nc >= 0 && nc < cols {
						out[nr][nc] = true
					}
				}
			}
		}
	}
	return out
}
