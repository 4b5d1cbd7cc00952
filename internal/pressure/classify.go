package pressure

import "math"

// FootType is the categorical arch classification.
type FootType string

const (
	FootTypeHighArch FootType = "high-arch"
	FootTypeNormal   FootType = "normal"
	FootTypeFlat     FootType = "flat"
	FootTypeNoData   FootType = "no-data"
)

// FootTypeResult describes one foot's arch classification.
type FootTypeResult struct {
	// Type is the categorical label derived from the arch index.
	Type FootType `json:"type"`

	// ArchIndex is the foot's midfoot pressure as a fraction of its own
	// total pressure. Clinical proxy for arch height; higher means flatter.
	ArchIndex float64 `json:"arch_index"`

	// Score is a 0-100 proximity-to-ideal heuristic: 100 at the center of
	// the normal band, decaying linearly to 0 at twice the band's
	// half-width from center. Not a probability.
	Score float64 `json:"score"`
}

// classifyArch maps an arch index to its foot type. Boundaries are
// inclusive on the lower side: an index exactly at HighArchMax is still a
// high arch, exactly at NormalMax is still normal.
func classifyArch(index float64, cfg Config) FootType {
	switch {
	case index <= cfg.HighArchMax:
		return FootTypeHighArch
	case index <= cfg.NormalMax:
		return FootTypeNormal
	default:
		return FootTypeFlat
	}
}

// archScore converts an arch index into the 0-100 score, rounded to one
// decimal. With a zero-width normal band the score is 100 only at the
// exact ideal index and 0 everywhere else.
func archScore(index float64, cfg Config) float64 {
	ideal := (cfg.HighArchMax + cfg.NormalMax) / 2
	width := (cfg.NormalMax - cfg.HighArchMax) / 2
	if width == 0 {
		if index == ideal {
			return 100
		}
		return 0
	}
	deviation := math.Abs(index-ideal) / width
	score := math.Max(0, 100-deviation*50)
	return math.Round(score*10) / 10
}

// classifyFoot builds the full result for one foot. A foot with no
// pressure, or a bounding box too small to define zones, is no-data.
func classifyFoot(foot Grid, zones *ZoneMap, cfg Config) FootTypeResult {
	total := foot.Sum()
	if total == 0 || zones == nil {
		return FootTypeResult{Type: FootTypeNoData}
	}
	index := float64(zoneSum(foot, zones.Mid)) / float64(total)
	return FootTypeResult{
		Type:      classifyArch(index, cfg),
		ArchIndex: index,
		Score:     archScore(index, cfg),
	}
}
