package pressure

// SeparateFeet partitions a cleaned grid into left and right foot grids of
// the same shape, with cells outside each foot's mask zeroed.
//
// Components are found with 8-connected labeling. A single component that
// straddles the vertical midline and spans more than a third of the grid
// width is assumed to be two touching feet and is force-split at the
// midline, provided both halves end up with pressure. Otherwise every
// component is assigned wholesale to the side its pressure-weighted
// centroid column falls on, which keeps a single foot that drifts across
// the centerline from being bisected.
//
// A grid with no pressure yields two zero grids.
func SeparateFeet(g Grid) (left, right Grid) {
	rows, cols := g.Dims()
	left = NewGrid(rows, cols)
	right = NewGrid(rows, cols)
	if g.Sum() == 0 {
		return left, right
	}

	mid := cols / 2
	components := labelComponents(g)

	if len(components) == 1 {
		comp := components[0]
		straddles := comp.MinCol < mid && mid < comp.colEnd()
		wide := 3*(comp.colEnd()-comp.MinCol) > cols
		if straddles && wide {
			leftSum, rightSum := 0, 0
			for _, cl := range comp.Cells {
				if cl.Col < mid {
					left[cl.Row][cl.Col] = g[cl.Row][cl.Col]
					leftSum += g[cl.Row][cl.Col]
				} else {
					right[cl.Row][cl.Col] = g[cl.Row][cl.Col]
					rightSum += g[cl.Row][cl.Col]
				}
			}
			if leftSum > 0 && rightSum > 0 {
				return left, right
			}
			// Split produced an empty half; discard it and fall through
			// to centroid assignment.
			left = NewGrid(rows, cols)
			right = NewGrid(rows, cols)
		}
	}

	for _, comp := range components {
		target := right
		if comp.centroidCol(g) < float64(mid) {
			target = left
		}
		for _, cl := range comp.Cells {
			target[cl.Row][cl.Col] = g[cl.Row][cl.Col]
		}
	}
	return left, right
}
