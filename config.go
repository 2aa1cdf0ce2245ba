package landmass

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/voidshard/landmass/internal/noise"
)

var (
	// ErrInvalidConfig implies a config value could not be understood.
	ErrInvalidConfig = errors.New("invalid config value")
)

// NoiseKind selects the coherent noise primitive used for all maps.
type NoiseKind = noise.Kind

const (
	// NoiseSimplex is the default noise primitive (opensimplex)
	NoiseSimplex = noise.Simplex

	// NoisePerlin swaps in classic perlin noise
	NoisePerlin = noise.Perlin
)

// AutoGenConfig is the input to Autogen. It's not modified by the pipeline.
type AutoGenConfig struct {
	// XScale & YScale map grid co-ords into noise space, a tile (x,y)
	// is sampled at (x/XScale, y/YScale). Larger values zoom in.
	XScale float64
	YScale float64

	// Landmass (height) noise frequency & offset.
	// The offset is added to the raw height (which is then clamped).
	LandmassFrequency float64
	LandmassOffset    float64

	// Precipitation noise frequency & offset.
	// Precipitation is 1.5 * noise + PrecipOffset, clamped.
	PrecipFrequency float64
	PrecipOffset    float64

	// Temperature noise frequency & offset.
	// Noise is half weighted on top of the latitude & altitude terms.
	TemperatureFrequency float64
	TemperatureOffset    float64

	// Tiles with height below this are Ocean. River fills also stop here.
	OceanHeight float64

	// Max tiles a single river may claim (including it's source).
	// 0 (or 1) means rivers are never pathed beyond their source.
	RiverTileLimit int

	// Seed for rng (random number chosen if not set).
	// All passes derive their seeds from this, so a given seed reproduces
	// the whole map.
	Seed int64

	// Noise selects the noise primitive, NoiseSimplex if not given
	Noise NoiseKind

	// Octaves of fractal noise to sum, 6 if not given
	Octaves int
}

// DefaultConfig returns a reasonable default AutoGenConfig.
func DefaultConfig() *AutoGenConfig {
	return &AutoGenConfig{
		XScale:               100,
		YScale:               100,
		LandmassFrequency:    1.5,
		LandmassOffset:       0.0,
		PrecipFrequency:      1.0,
		PrecipOffset:         0.0,
		TemperatureFrequency: 2.0,
		TemperatureOffset:    0.0,
		OceanHeight:          -0.25,
		RiverTileLimit:       100,
		Noise:                NoiseSimplex,
		Octaves:              noise.DefaultOctaves,
	}
}

// ConfigFromMap returns DefaultConfig() with any values given in `cfg`
// (flag-style key/value pairs) set over the top.
//
// Keys are the snake_case field names; eg. "x_scale", "ocean_height",
// "river_tile_limit", "seed", "noise" ("simplex" or "perlin").
// An unknown key is an error, so a typo isn't silently dropped.
func ConfigFromMap(cfg map[string]string) (*AutoGenConfig, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}

	floats := map[string]*float64{
		"x_scale":               &c.XScale,
		"y_scale":               &c.YScale,
		"landmass_frequency":    &c.LandmassFrequency,
		"landmass_offset":       &c.LandmassOffset,
		"precip_frequency":      &c.PrecipFrequency,
		"precip_offset":         &c.PrecipOffset,
		"temperature_frequency": &c.TemperatureFrequency,
		"temperature_offset":    &c.TemperatureOffset,
		"ocean_height":          &c.OceanHeight,
	}
	ints := map[string]*int{
		"river_tile_limit": &c.RiverTileLimit,
		"octaves":          &c.Octaves,
	}

	for k := range cfg {
		_, isFloat := floats[k]
		_, isInt := ints[k]
		if !isFloat && !isInt && k != "seed" && k != "noise" {
			return nil, errors.Wrapf(ErrInvalidConfig, "unknown key %q", k)
		}
	}

	for k, ptr := range floats {
		v, ok := cfg[k]
		if !ok {
			continue
		}
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidConfig, "%s=%q", k, v)
		}
		*ptr = parsed
	}

	for k, ptr := range ints {
		v, ok := cfg[k]
		if !ok {
			continue
		}
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			return nil, errors.Wrapf(ErrInvalidConfig, "%s=%q", k, v)
		}
		*ptr = parsed
	}

	if v, ok := cfg["seed"]; ok {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidConfig, "seed=%q", v)
		}
		c.Seed = parsed
	}

	if v, ok := cfg["noise"]; ok {
		k, err := noise.ParseKind(v)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidConfig, "noise: %v", err)
		}
		c.Noise = k
	}

	return c, nil
}

// octaves returns the configured octaves, or the default if unset
func (c *AutoGenConfig) octaves() int {
	if c.Octaves <= 0 {
		return noise.DefaultOctaves
	}
	return c.Octaves
}
