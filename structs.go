package landmass

// Tile is a single (x,y) co-ord on the map.
type Tile struct {
	X int
	Y int
}

// Feature is an overlay tag on a tile, independent of biome.
// A tile holds at most one feature; later pipeline stages overwrite
// earlier ones.
type Feature int

const (
	// NoFeature is never stored, it's what a missing overlay entry means
	NoFeature Feature = iota
	RiverSource
	River
	Ocean
)

// String returns a human readable feature name
func (f Feature) String() string {
	switch f {
	case RiverSource:
		return "river-source"
	case River:
		return "river"
	case Ocean:
		return "ocean"
	default:
		return "none"
	}
}

// Stats holds generic stats about the landmass.
type Stats struct {
	// Count of tiles of each biome (including tiles under a feature)
	BiomeCounts map[Biome]int

	// Count of tiles carrying each feature
	FeatureCounts map[Feature]int

	// number of river sources that were pathed
	Rivers int

	// total tiles over all river paths (a tile shared by two rivers counts twice)
	RiverTiles int

	// rivers whose fill stopped at sea level rather than the tile limit
	RiversReachingOcean int
}

// newStats returns blank Stats
func newStats() *Stats {
	return &Stats{
		BiomeCounts:   map[Biome]int{},
		FeatureCounts: map[Feature]int{},
	}
}

// RiverPath is the outcome of a single flood-fill.
type RiverPath struct {
	// Source tile the river grew from
	Source Tile

	// Tiles claimed by the fill (excluding Source) in the order they were claimed
	Tiles []Tile

	// ReachedOcean is true if the fill hit sea level before the tile limit
	ReachedOcean bool
}
