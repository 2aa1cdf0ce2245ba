package landmass

import (
	"sort"
)

// Biome is a classification label derived from the temperature &
// precipitation at a tile.
type Biome string

const (
	Tundra                  Biome = "tundra"                    // default; cold, dry, nothing else matched
	BorealForest            Biome = "boreal-forest"             // cold but wet enough for conifers
	TemperateRainforest     Biome = "temperate-rainforest"      // nb. never produced by ClassifyBiome, see below
	TemperateSeasonalForest Biome = "temperate-seasonal-forest" // mild & wet
	Shrubland               Biome = "shrubland"                 // mild, middling rain
	ColdDesert              Biome = "cold-desert"               // mild or cold & dry
	TropicalRainforest      Biome = "tropical-rainforest"       // hot & very wet
	Savanna                 Biome = "savanna"                   // hot, seasonal rain
	SubtropicalDesert       Biome = "subtropical-desert"        // hot & dry
)

var (
	allBiomes = []Biome{
		Tundra, BorealForest, TemperateRainforest, TemperateSeasonalForest,
		Shrubland, ColdDesert, TropicalRainforest, Savanna, SubtropicalDesert,
	}

	biomeIndex = map[Biome]int{
		Tundra:                  0,
		BorealForest:            1,
		TemperateRainforest:     2,
		TemperateSeasonalForest: 3,
		Shrubland:               4,
		ColdDesert:              5,
		TropicalRainforest:      6,
		Savanna:                 7,
		SubtropicalDesert:       8,
	}
)

// ID returns the index of a biome, -1 if it isn't one we know about
func (b Biome) ID() int {
	i, ok := biomeIndex[b]
	if !ok {
		return -1
	}
	return i
}

// String returns the biome name
func (b Biome) String() string {
	return string(b)
}

// AllBiomes returns all biomes (ordered by ID)
func AllBiomes() []Biome {
	out := make([]Biome, len(allBiomes))
	copy(out, allBiomes)
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// TempToCelsius maps a normalised temperature [-1, 1] to degrees C [-10, 32].
func TempToCelsius(t float64) float64 {
	return (t+1)/2*42 - 10
}

// PrecipToCentimeters maps a normalised precipitation [-1, 1] to cm of
// rainfall [0, 450], scaled down at colder (normalised) temperatures.
func PrecipToCentimeters(p, t float64) float64 {
	return (p + 1) / 2 * 450 * (t + 1) / 2
}

// ClassifyBiome decides a biome given a temperature (C) & precipitation (cm).
//
// We start from Tundra & run through each band in turn; bands overlap and the
// last one to match wins. All bounds are strict.
//
// Nb. the wettest temperate band gives TemperateSeasonalForest, the same as
// the band below it, so TemperateRainforest is never returned. This is the
// table as we inherited it.
func ClassifyBiome(tempC, precipCm float64) Biome {
	t, p := tempC, precipCm
	b := Tundra

	if t > 0 && t < 7 && p > 40 {
		b = BorealForest
	}
	if t > 0 && t < 22 && p < 50 {
		b = ColdDesert
	}

	if t > 7 && t < 22 {
		shrubMax := 17.33 + 4.67*t
		seasonalMax := 170 + 4*t
		if p > 50 && p < shrubMax {
			b = Shrubland
		}
		if p > shrubMax && p < seasonalMax {
			b = TemperateSeasonalForest
		}
		if p > seasonalMax {
			b = TemperateSeasonalForest
		}
	}

	if t > 22 {
		dry := 5*t - 60
		wet := 5*t + 170
		if p < dry {
			b = SubtropicalDesert
		}
		if p > dry && p < wet {
			b = Savanna
		}
		if p > wet {
			b = TropicalRainforest
		}
	}

	return b
}

// classifyTile converts normalised values & classifies
func classifyTile(temp, precip float64) Biome {
	return ClassifyBiome(TempToCelsius(temp), PrecipToCentimeters(precip, temp))
}
