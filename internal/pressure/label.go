package pressure

import "gonum.org/v1/gonum/stat"

// cell is a single grid coordinate.
type cell struct {
	Row, Col int
}

// component is a maximal 8-connected set of nonzero cells.
type component struct {
	Cells  []cell
	MinCol int
	MaxCol int // inclusive
	Sum    int
}

// colEnd returns the exclusive column bound of the component.
func (comp *component) colEnd() int {
	return comp.MaxCol + 1
}

// centroidCol returns the pressure-weighted mean column of the component.
func (comp *component) centroidCol(g Grid) float64 {
	xs := make([]float64, len(comp.Cells))
	weights := make([]float64, len(comp.Cells))
	for i, cl := range comp.Cells {
		xs[i] = float64(cl.Col)
		weights[i] = float64(g[cl.Row][cl.Col])
	}
	return stat.Mean(xs, weights)
}

// labelComponents finds all 8-connected components of nonzero cells using
// an iterative stack-based flood fill.
func labelComponents(g Grid) []*component {
	rows, cols := g.Dims()
	visited := make([][]bool, rows)
	for r := range visited {
		visited[r] = make([]bool, cols)
	}

	var components []*component
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if g[r][c] == 0 || visited[r][c] {
				continue
			}
			comp := &component{MinCol: c, MaxCol: c}
			stack := []cell{{Row: r, Col: c}}
			for len(stack) > 0 {
				p := stack[len(stack)-1]
				stack = stack[:len(stack)-1]

				if p.Row < 0 || p.Row >= rows || p.Col < 0 || p.Col >= cols {
					continue
				}
				if visited[p.Row][p.Col] || g[p.Row][p.Col] == 0 {
					continue
				}
				visited[p.Row][p.Col] = true
				comp.Cells = append(comp.Cells, p)
				comp.Sum += g[p.Row][p.Col]
				if p.Col < comp.MinCol {
					comp.MinCol = p.Col
				}
				if p.Col > comp.MaxCol {
					comp.MaxCol = p.Col
				}

				for dr := -1; dr <= 1; dr++ {
					for dc := -1; dc <= 1; dc++ {
						if dr == 0 && dc == 0 {
							continue
						}
						stack = append(stack, cell{Row: p.Row + dr, Col: p.Col + dc})
					}
				}
			}
			components = append(components, comp)
		}
	}
	return components
}
