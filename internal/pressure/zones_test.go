package pressure

import (
	"math"
	"testing"
)

func TestFootExtent(t *testing.T) {
	g := NewGrid(10, 6)
	fillBlock(g, 3, 1, 4, 2, 8)

	box := footExtent(g)
	if box == nil {
		t.Fatal("extent is nil for a grid with pressure")
	}
	if box.MinRow != 3 || box.MaxRow != 6 {
		t.Errorf("extent: got [%d,%d], want [3,6]", box.MinRow, box.MaxRow)
	}
	if box.Height() != 4 {
		t.Errorf("height: got %d, want 4", box.Height())
	}
}

func TestFootExtent_Empty(t *testing.T) {
	if box := footExtent(NewGrid(5, 5)); box != nil {
		t.Errorf("extent of an empty foot should be nil, got %+v", box)
	}
}

func TestCombineExtents(t *testing.T) {
	tests := []struct {
		name        string
		left, right *BoundingBox
		want        *BoundingBox
	}{
		{"both absent", nil, nil, nil},
		{"left only", &BoundingBox{2, 8}, nil, &BoundingBox{2, 8}},
		{"right only", nil, &BoundingBox{1, 5}, &BoundingBox{1, 5}},
		{"union", &BoundingBox{3, 7}, &BoundingBox{1, 5}, &BoundingBox{1, 7}},
		{"nested", &BoundingBox{0, 9}, &BoundingBox{4, 6}, &BoundingBox{0, 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := combineExtents(tt.left, tt.right)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("got %+v, want %+v", *got, *tt.want)
			}
		})
	}
}

func TestZonesFor_Monotonic(t *testing.T) {
	cfg := DefaultConfig()
	for height := 4; height <= 40; height++ {
		box := BoundingBox{MinRow: 2, MaxRow: 2 + height - 1}
		zones := zonesFor(box, cfg)
		if zones == nil {
			t.Fatalf("height %d: zones should be defined", height)
		}
		if !(zones.Hind.Start < zones.Hind.Stop &&
			zones.Hind.Stop == zones.Mid.Start &&
			zones.Mid.Start < zones.Mid.Stop &&
			zones.Mid.Stop == zones.Fore.Start &&
			zones.Fore.Start < zones.Fore.Stop) {
			t.Errorf("height %d: zones not monotonic/contiguous: %+v", height, zones)
		}
		if zones.Fore.Stop != box.MaxRow+1 {
			t.Errorf("height %d: fore ends at %d, want %d", height, zones.Fore.Stop, box.MaxRow+1)
		}
	}
}

func TestZonesFor_TooSmall(t *testing.T) {
	cfg := DefaultConfig()
	for height := 1; height <= 2; height++ {
		box := BoundingBox{MinRow: 0, MaxRow: height - 1}
		if zones := zonesFor(box, cfg); zones != nil {
			t.Errorf("height %d: zones should be undefined, got %+v", height, zones)
		}
	}
}

func TestZonesFor_RatiosNeedNotSumToOne(t *testing.T) {
	// Only the hind and mid boundaries derive from ratios; fore always
	// ends at MaxRow+1 regardless of any shortfall.
	cfg := DefaultConfig()
	cfg.HindfootRatio = 0.2
	cfg.MidfootRatio = 0.2

	zones := zonesFor(BoundingBox{MinRow: 0, MaxRow: 9}, cfg)
	if zones == nil {
		t.Fatal("zones should be defined")
	}
	if zones.Hind.Stop != 2 || zones.Mid.Stop != 4 {
		t.Errorf("boundaries: got hind stop %d, mid stop %d, want 2 and 4", zones.Hind.Stop, zones.Mid.Stop)
	}
	if zones.Fore.Stop != 10 {
		t.Errorf("fore stop: got %d, want 10", zones.Fore.Stop)
	}
}

func TestDistribution_SumsTo100(t *testing.T) {
	left := NewGrid(20, 10)
	right := NewGrid(20, 10)
	// Uneven pressure so the per-zone shares are not trivially equal.
	fillBlock(left, 2, 1, 14, 3, 10)
	fillBlock(left, 3, 2, 4, 2, 25)
	fillBlock(right, 4, 6, 12, 3, 7)

	box := combineExtents(footExtent(left), footExtent(right))
	zones := zonesFor(*box, DefaultConfig())
	dist := distribution(left, right, *zones)

	for _, prefix := range []string{"L", "R"} {
		sum := dist[prefix+"H"] + dist[prefix+"M"] + dist[prefix+"F"]
		if math.Abs(sum-100) > 1e-6 {
			t.Errorf("%s percentages sum to %f, want 100", prefix, sum)
		}
	}
}

func TestDistribution_AbsentFoot(t *testing.T) {
	left := NewGrid(10, 10)
	right := NewGrid(10, 10)
	fillBlock(left, 0, 0, 5, 3, 10)

	box := footExtent(left)
	zones := zonesFor(*box, DefaultConfig())
	dist := distribution(left, right, *zones)

	for key := range dist {
		if key[0] == 'R' {
			t.Errorf("absent right foot produced entry %q", key)
		}
	}
	if len(dist) != 3 {
		t.Errorf("got %d entries, want 3 left-side entries", len(dist))
	}
}
