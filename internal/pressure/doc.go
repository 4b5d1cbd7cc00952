// Package pressure implements the foot pressure analysis pipeline.
//
// The input is a rectangular grid of non-negative integer sensor readings
// from a pressure mat, one value per sensor cell. Analyze runs five stages
// over the grid and returns a structured result:
//
//  1. Noise filtering: a value threshold followed by a 3x3 binary
//     morphological opening removes isolated noise cells.
//  2. Center of pressure: the pressure-weighted centroid of the cleaned grid.
//  3. Foot separation: connected-component labeling splits the grid into
//     left and right foot grids, with a forced midline split for the case
//     where both feet touch and appear as a single component.
//  4. Zone distribution: the combined vertical extent of both feet is
//     divided into hindfoot, midfoot and forefoot row ranges, and each
//     foot's pressure is summed per zone as a percentage of its own total.
//  5. Arch classification: each foot's midfoot-to-total pressure ratio
//     (the arch index) maps to a categorical foot type and a score.
//
// # Coordinate System
//
// Grids are row-major: grid[row][col], row 0 at the top (heel end), column 0
// at the left. The vertical midline between feet is at column cols/2.
//
// # Degenerate Input
//
// Only an empty or ragged grid is an error. All-zero grids, single-foot
// grids and extents too small to subdivide complete normally with absent
// fields (nil center of pressure, nil bounding box, empty distribution,
// "no-data" foot types).
//
// # Thread Safety
//
// Analyze is a pure function over its arguments. It holds no package state,
// so concurrent calls with different grids and configurations are safe.
package pressure
