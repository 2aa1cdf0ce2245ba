package landmass

import (
	"io"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"github.com/voidshard/landmass/internal/noise"
)

// seed offsets for each pass, added to the root seed
const (
	seedHeight int64 = iota
	seedPrecip
	seedTemperature
	seedRivers
)

// Landmass holds our maps & the feature overlay, and runs the generation
// pipeline over them.
//
// All maps are the same size, fixed by New.
type Landmass struct {
	HeightMap      *Grid[float64]
	PrecipMap      *Grid[float64]
	TemperatureMap *Grid[float64]
	BiomeMap       *Grid[Biome]

	// Features is sparse, tiles without an entry have no feature.
	Features map[Tile]Feature

	// Rivers holds each river path from the last pipeline run, in the
	// order the sources were processed.
	Rivers []*RiverPath

	Stats *Stats

	// Seed the last Autogen used (chosen at random if the config had none)
	Seed int64

	cfg *AutoGenConfig
	rng Rand
	log *slog.Logger
}

// New creates a w x h landmass with every map zeroed.
// Nb. biomes start as Tundra (the classifier default) & nothing has
// a feature.
func New(w, h int) *Landmass {
	l := &Landmass{
		HeightMap:      NewGrid[float64](w, h),
		PrecipMap:      NewGrid[float64](w, h),
		TemperatureMap: NewGrid[float64](w, h),
		BiomeMap:       NewGrid[Biome](w, h),
		Features:       map[Tile]Feature{},
		Rivers:         []*RiverPath{},
		Stats:          newStats(),
		cfg:            DefaultConfig(),
		log:            slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	l.BiomeMap.Fill(Tundra)
	return l
}

// Width of the landmass (X)
func (l *Landmass) Width() int { return l.HeightMap.Width() }

// Height of the landmass (Y)
func (l *Landmass) Height() int { return l.HeightMap.Height() }

// SetLogger sets a logger to report pipeline progress to.
func (l *Landmass) SetLogger(log *slog.Logger) {
	if log == nil {
		return
	}
	l.log = log
}

// Feature returns the feature at x,y or NoFeature
func (l *Landmass) Feature(x, y int) Feature {
	f, ok := l.Features[Tile{X: x, Y: y}]
	if !ok {
		return NoFeature
	}
	return f
}

// Autogen runs the whole pipeline with the given config. Order is
// important as each stage relies on those before it.
//
// height -> precipitation -> temperature -> biome -> ocean -> river sources -> rivers
func (l *Landmass) Autogen(cfg *AutoGenConfig) {
	l.Configure(cfg)

	l.log.Debug("generating landmass", "width", l.Width(), "height", l.Height(), "seed", l.Seed, "noise", l.cfg.Noise)

	l.GenerateHeight(l.field(l.cfg.LandmassFrequency, seedHeight))
	l.GeneratePrecipitation(l.field(l.cfg.PrecipFrequency, seedPrecip))
	l.GenerateTemperature(l.field(l.cfg.TemperatureFrequency, seedTemperature))
	l.GenerateBiomes()
	l.PopulateOcean()
	l.SeedRiverSources(l.rng)
	l.PathRivers()

	l.computeStats()

	l.log.Info(
		"landmass generated",
		"seed", l.Seed,
		"ocean", l.Stats.FeatureCounts[Ocean],
		"rivers", l.Stats.Rivers,
		"river_tiles", l.Stats.RiverTiles,
		"reached_ocean", l.Stats.RiversReachingOcean,
	)
}

// Configure sets the config & resolves the seed / rng for a pipeline run.
// Autogen calls this, it's only needed if running stages by hand.
func (l *Landmass) Configure(cfg *AutoGenConfig) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	l.cfg = cfg

	l.Seed = cfg.Seed
	if l.Seed == 0 {
		l.Seed = time.Now().UnixNano()
	}
	l.rng = rand.New(rand.NewSource(l.Seed + seedRivers))
}

// field returns the noise field for a pass
func (l *Landmass) field(frequency float64, pass int64) Sampler {
	return noise.New(l.cfg.Noise, l.Seed+pass, frequency, l.cfg.octaves())
}

// sampleAt returns the noise co-ord for a tile
func (l *Landmass) sampleAt(s Sampler, x, y int) float64 {
	xs, ys := l.cfg.XScale, l.cfg.YScale
	if xs == 0 {
		xs = 1
	}
	if ys == 0 {
		ys = 1
	}
	return s.Sample(float64(x)/xs, float64(y)/ys)
}

// GenerateHeight fills the height map from the given noise.
func (l *Landmass) GenerateHeight(s Sampler) {
	l.HeightMap.Each(func(x, y int, _ float64) {
		l.HeightMap.Set(x, y, clamp(l.sampleAt(s, x, y)+l.cfg.LandmassOffset))
	})
	l.log.Debug("generated height map")
}

// GeneratePrecipitation fills the precipitation map from the given noise.
func (l *Landmass) GeneratePrecipitation(s Sampler) {
	l.PrecipMap.Each(func(x, y int, _ float64) {
		l.PrecipMap.Set(x, y, clamp(l.sampleAt(s, x, y)*1.5+l.cfg.PrecipOffset))
	})
	l.log.Debug("generated precipitation map")
}

// GenerateTemperature fills the temperature map. Requires the height map.
//
// Warmest across the vertical centre, coldest at the poles, colder again with
// altitude, with some noise on top.
func (l *Landmass) GenerateTemperature(s Sampler) {
	ymax := float64(l.Height())
	l.TemperatureMap.Each(func(x, y int, _ float64) {
		latitude := -2.6*math.Abs(float64(y)/ymax-0.5) + 0.8
		t := latitude - altitudePenalty(l.HeightMap.Get(x, y)) + 0.5*l.sampleAt(s, x, y) + l.cfg.TemperatureOffset
		l.TemperatureMap.Set(x, y, clamp(t))
	})
	l.log.Debug("generated temperature map")
}

// altitudePenalty is subtracted from temperature at height h.
func altitudePenalty(h float64) float64 {
	switch {
	case h <= 0.0:
		return 0
	case h <= 0.7:
		return 0.8 * h
	case h <= 0.8:
		return 5*(h-0.7) + 0.4
	default:
		return 10*(h-0.8) + 0.9
	}
}

// GenerateBiomes classifies every tile. Requires temperature & precipitation.
func (l *Landmass) GenerateBiomes() {
	l.BiomeMap.Each(func(x, y int, _ Biome) {
		l.BiomeMap.Set(x, y, classifyTile(l.TemperatureMap.Get(x, y), l.PrecipMap.Get(x, y)))
	})
	l.log.Debug("classified biomes")
}

// PopulateOcean tags every tile below ocean height as Ocean.
func (l *Landmass) PopulateOcean() {
	count := 0
	l.HeightMap.Each(func(x, y int, h float64) {
		if h < l.cfg.OceanHeight {
			l.Features[Tile{X: x, Y: y}] = Ocean
			count++
		}
	})
	l.log.Debug("populated ocean", "tiles", count)
}

// SeedRiverSources marks river sources, with wetter tiles more likely to be one.
//
// A tile only gets a draw if none of it's neighbours is already a source, so the
// order we walk tiles (x then y) decides which of two adjacent candidates wins.
// Ocean tiles never get a draw.
func (l *Landmass) SeedRiverSources(rng Rand) {
	count := 0
	l.PrecipMap.Each(func(x, y int, precip float64) {
		if l.Features[Tile{X: x, Y: y}] == Ocean {
			return
		}
		for _, n := range l.PrecipMap.Neighbors(x, y) {
			if l.Features[n] == RiverSource {
				return
			}
		}
		if rng.Float64() > 1.0-0.1*precip {
			l.Features[Tile{X: x, Y: y}] = RiverSource
			count++
		}
	})
	l.log.Debug("seeded river sources", "sources", count)
}

// PathRivers floods out from every river source & marks the result as River.
//
// Sources are collected before any river is written, so a river running over
// another source does not stop that source being pathed.
func (l *Landmass) PathRivers() {
	sources := l.riverSources()
	l.Rivers = make([]*RiverPath, 0, len(sources))

	for _, src := range sources {
		lake := NewLake(l.HeightMap, src, l.cfg.OceanHeight, l.cfg.RiverTileLimit)
		tiles := lake.Fill()

		for _, t := range tiles {
			l.Features[t] = River
		}

		l.Rivers = append(l.Rivers, &RiverPath{Source: src, Tiles: tiles, ReachedOcean: lake.ReachedOcean()})
	}
	l.log.Debug("pathed rivers", "rivers", len(l.Rivers))
}

// riverSources returns all RiverSource tiles, x then y (ie. grid index order).
func (l *Landmass) riverSources() []Tile {
	sources := []Tile{}
	for i := 0; i < l.HeightMap.Len(); i++ {
		t := l.HeightMap.TileAt(i)
		if l.Features[t] == RiverSource {
			sources = append(sources, t)
		}
	}
	return sources
}

// computeStats rebuilds Stats from the current maps
func (l *Landmass) computeStats() {
	s := newStats()
	for _, b := range l.BiomeMap.Values() {
		s.BiomeCounts[b]++
	}
	for _, f := range l.Features {
		s.FeatureCounts[f]++
	}
	for _, r := range l.Rivers {
		s.Rivers++
		s.RiverTiles += len(r.Tiles)
		if r.ReachedOcean {
			s.RiversReachingOcean++
		}
	}
	l.Stats = s
}
