package pressure

// BoundingBox is an inclusive vertical row range covering the union of
// both feet's detected extents.
type BoundingBox struct {
	MinRow int `json:"min_row"`
	MaxRow int `json:"max_row"`
}

// Height returns the number of rows covered by the box.
func (b BoundingBox) Height() int {
	return b.MaxRow - b.MinRow + 1
}

// ZoneSpan is a half-open row range [Start, Stop).
type ZoneSpan struct {
	Start int `json:"start"`
	Stop  int `json:"stop"`
}

// ZoneMap divides a bounding box into three contiguous row ranges in
// top-to-bottom order: hindfoot, midfoot, forefoot.
type ZoneMap struct {
	Hind ZoneSpan `json:"hind"`
	Mid  ZoneSpan `json:"mid"`
	Fore ZoneSpan `json:"fore"`
}

// footExtent returns the vertical extent of a foot grid: the minimum and
// maximum row indices containing any nonzero cell. Returns nil when the
// foot carries no pressure.
func footExtent(g Grid) *BoundingBox {
	minRow, maxRow := -1, -1
	for r, row := range g {
		for _, v := range row {
			if v > 0 {
				if minRow < 0 {
					minRow = r
				}
				maxRow = r
				break
			}
		}
	}
	if minRow < 0 {
		return nil
	}
	return &BoundingBox{MinRow: minRow, MaxRow: maxRow}
}

// combineExtents merges the extents of both feet, using whichever are
// present. Returns nil when neither foot has an extent.
func combineExtents(left, right *BoundingBox) *BoundingBox {
	switch {
	case left == nil && right == nil:
		return nil
	case left == nil:
		b := *right
		return &b
	case right == nil:
		b := *left
		return &b
	}
	box := BoundingBox{MinRow: left.MinRow, MaxRow: left.MaxRow}
	if right.MinRow < box.MinRow {
		box.MinRow = right.MinRow
	}
	if right.MaxRow > box.MaxRow {
		box.MaxRow = right.MaxRow
	}
	return &box
}

// zonesFor splits a bounding box into hind/mid/fore row ranges by the
// configured ratios. The hind and mid boundaries come from truncated
// proportions of the height; the forefoot always ends at MaxRow+1, so
// ratios need not sum to exactly 1. Boxes shorter than 3 rows are too
// small to subdivide and yield nil.
func zonesFor(box BoundingBox, cfg Config) *ZoneMap {
	height := box.Height()
	if height < 3 {
		return nil
	}
	hindEnd := box.MinRow + int(float64(height)*cfg.HindfootRatio)
	midEnd := hindEnd + int(float64(height)*cfg.MidfootRatio)
	return &ZoneMap{
		Hind: ZoneSpan{Start: box.MinRow, Stop: hindEnd},
		Mid:  ZoneSpan{Start: hindEnd, Stop: midEnd},
		Fore: ZoneSpan{Start: midEnd, Stop: box.MaxRow + 1},
	}
}

// zoneSum totals a foot grid's pressure within a zone's row range.
func zoneSum(g Grid, span ZoneSpan) int {
	rows, _ := g.Dims()
	total := 0
	for r := span.Start; r < span.Stop && r < rows; r++ {
		if r < 0 {
			continue
		}
		for _, v := range g[r] {
			total += v
		}
	}
	return total
}

// distribution builds the per-side, per-zone percentage map. Keys are the
// side prefix (L or R) followed by the zone initial (H, M, F). Each value
// is that zone's share of the foot's own total pressure. A foot with zero
// total pressure contributes no entries.
func distribution(left, right Grid, zones ZoneMap) map[string]float64 {
	dist := make(map[string]float64)
	feet := []struct {
		prefix string
		grid   Grid
	}{
		{"L", left},
		{"R", right},
	}
	spans := []struct {
		initial string
		span    ZoneSpan
	}{
		{"H", zones.Hind},
		{"M", zones.Mid},
		{"F", zones.Fore},
	}
	for _, foot := range feet {
		total := foot.grid.Sum()
		if total == 0 {
			continue
		}
		for _, z := range spans {
			dist[foot.prefix+z.initial] = float64(zoneSum(foot.grid, z.span)) / float64(total) * 100
		}
	}
	return dist
}
