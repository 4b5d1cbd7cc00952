package pressure

import (
	"errors"
	"fmt"
)

// ErrNoData indicates an empty input grid: the analysis refuses to run
// rather than producing a meaningless result.
var ErrNoData = errors.New("pressure grid is empty")

// Sides of the body, used as keys in Result.FootTypes.
const (
	SideLeft  = "left"
	SideRight = "right"
)

// Result is the aggregate output of one analysis run. Distribution keys
// combine a side prefix (L, R) with a zone initial (H, M, F), e.g. "LM"
// is the left foot's midfoot percentage. Pointer fields are nil, and the
// distribution empty, when the corresponding value is undefined for the
// input (all-zero grid, extent too small to subdivide).
type Result struct {
	Distribution map[string]float64        `json:"distribution"`
	FootTypes    map[string]FootTypeResult `json:"foot_types"`
	BoundingBox  *BoundingBox              `json:"final_bbox,omitempty"`
	Zones        *ZoneMap                  `json:"zones,omitempty"`
	CoP          *CenterOfPressure         `json:"cop,omitempty"`

	// Intermediate grids, retained for rendering and verification. Not
	// part of the wire representation.
	Cleaned   Grid `json:"-"`
	LeftFoot  Grid `json:"-"`
	RightFoot Grid `json:"-"`
}

// Analyze runs the full pipeline over a raw pressure grid.
//
// The only failure mode is malformed input: a nil, empty or ragged grid,
// or negative cell values. Degenerate-but-valid input (all zeros, one foot
// only, an extent too small for zones) is never an error; the returned
// Result simply leaves the affected fields absent.
func Analyze(grid Grid, cfg Config) (*Result, error) {
	if len(grid) == 0 {
		return nil, ErrNoData
	}
	if !grid.rectangular() {
		return nil, fmt.Errorf("pressure grid is ragged: rows have differing lengths")
	}
	for r, row := range grid {
		for c, v := range row {
			if v < 0 {
				return nil, fmt.Errorf("negative pressure value %d at row %d, col %d", v, r, c)
			}
		}
	}

	cleaned := FilterNoise(grid, cfg.NoiseThreshold)
	left, right := SeparateFeet(cleaned)

	res := &Result{
		Distribution: make(map[string]float64),
		FootTypes:    make(map[string]FootTypeResult),
		CoP:          centerOfPressure(cleaned),
		Cleaned:      cleaned,
		LeftFoot:     left,
		RightFoot:    right,
	}

	res.BoundingBox = combineExtents(footExtent(left), footExtent(right))

	var zones *ZoneMap
	if res.BoundingBox != nil {
		zones = zonesFor(*res.BoundingBox, cfg)
	}
	res.Zones = zones
	if zones != nil {
		res.Distribution = distribution(left, right, *zones)
	}

	res.FootTypes[SideLeft] = classifyFoot(left, zones, cfg)
	res.FootTypes[SideRight] = classifyFoot(right, zones, cfg)

	return res, nil
}
