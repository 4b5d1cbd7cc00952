package pressure

// Config bundles the tunable analysis parameters. A Config is passed by
// value into Analyze so concurrent runs with different settings cannot
// interfere with each other.
type Config struct {
	// NoiseThreshold zeroes cells at or below this value before the
	// morphological cleaning pass.
	NoiseThreshold int

	// HindfootRatio and MidfootRatio are the proportions of the combined
	// bounding box height assigned to the hindfoot and midfoot zones.
	// The forefoot zone fills the remainder up to the bounding box end.
	HindfootRatio float64
	MidfootRatio  float64

	// HighArchMax and NormalMax are the arch index classification
	// boundaries: index <= HighArchMax is a high arch, index <= NormalMax
	// is normal, anything above is a flat foot.
	HighArchMax float64
	NormalMax   float64
}

// DefaultConfig returns the standard analysis parameters.
func DefaultConfig() Config {
	return Config{
		NoiseThreshold: 5,
		HindfootRatio:  0.3,
		MidfootRatio:   0.4,
		HighArchMax:    0.21,
		NormalMax:      0.26,
	}
}
