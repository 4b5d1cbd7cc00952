package pressure

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// CenterOfPressure is the pressure-weighted centroid of the cleaned grid,
// in fractional grid coordinates.
type CenterOfPressure struct {
	Row float64 `json:"row"`
	Col float64 `json:"col"`
}

// centerOfPressure computes the weighted centroid from the row and column
// marginals. Returns nil when the grid carries no pressure.
func centerOfPressure(g Grid) *CenterOfPressure {
	rowSums := g.rowSums()
	if floats.Sum(rowSums) == 0 {
		return nil
	}
	colSums := g.colSums()
	return &CenterOfPressure{
		Row: stat.Mean(indices(len(rowSums)), rowSums),
		Col: stat.Mean(indices(len(colSums)), colSums),
	}
}

// indices returns [0, 1, ..., n-1] as floats.
func indices(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}
	return xs
}
