package landmass

import (
	"testing"

	"github.com/pkg/errors"
)

func TestConfigFromMapDefaults(t *testing.T) {
	for _, in := range []map[string]string{nil, {}} {
		cfg, err := ConfigFromMap(in)
		if err != nil {
			t.Fatalf("unexpected error %v", err)
		}
		if *cfg != *DefaultConfig() {
			t.Fatalf("expected defaults, got %+v", cfg)
		}
	}
}

func TestConfigFromMap(t *testing.T) {
	cfg, err := ConfigFromMap(map[string]string{
		"x_scale":               "50",
		"y_scale":               "25.5",
		"landmass_frequency":    "3",
		"landmass_offset":       "-0.1",
		"precip_frequency":      "0.5",
		"precip_offset":         "0.2",
		"temperature_frequency": "4",
		"temperature_offset":    "-0.3",
		"ocean_height":          "-0.4",
		"river_tile_limit":      "12",
		"octaves":               "3",
		"seed":                  "-99",
		"noise":                 " Perlin ",
	})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	expect := AutoGenConfig{
		XScale:               50,
		YScale:               25.5,
		LandmassFrequency:    3,
		LandmassOffset:       -0.1,
		PrecipFrequency:      0.5,
		PrecipOffset:         0.2,
		TemperatureFrequency: 4,
		TemperatureOffset:    -0.3,
		OceanHeight:          -0.4,
		RiverTileLimit:       12,
		Octaves:              3,
		Seed:                 -99,
		Noise:                NoisePerlin,
	}
	if *cfg != expect {
		t.Fatalf("expected %+v, got %+v", expect, *cfg)
	}
}

func TestConfigFromMapInvalid(t *testing.T) {
	cases := []map[string]string{
		{"x_scale": "wide"},
		{"ocean_height": ""},
		{"river_tile_limit": "-1"},
		{"river_tile_limit": "1.5"},
		{"octaves": "many"},
		{"seed": "0x"},
		{"noise": "worley"},
		{"ocen_height": "-0.1"},
		{"ocean_height": "-0.1", "Seed": "4"},
	}
	for _, in := range cases {
		cfg, err := ConfigFromMap(in)
		if err == nil {
			t.Fatalf("%v: expected error, got %+v", in, cfg)
		}
		if !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("%v: expected ErrInvalidConfig, got %v", in, err)
		}
	}
}

func TestConfigOctaves(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Octaves = 0
	if cfg.octaves() != 6 {
		t.Fatalf("expected default octaves, got %d", cfg.octaves())
	}
	cfg.Octaves = 2
	if cfg.octaves() != 2 {
		t.Fatalf("expected 2 octaves, got %d", cfg.octaves())
	}
}
