package noise

import (
	"fmt"
	"math"
	"strings"

	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Kind picks which noise primitive backs a Field
type Kind string

const (
	Simplex Kind = "simplex"
	Perlin  Kind = "perlin"
)

const (
	// DefaultOctaves of fBm summed per sample
	DefaultOctaves = 6

	lacunarity  = 2.0
	persistence = 0.5

	// go-perlin params; alpha/beta are the weight & frequency step between
	// it's own internal octaves. We only ask it for a single octave since we
	// do our own fractal sum.
	perlinAlpha = 2.0
	perlinBeta  = 2.0

	// Gain of a single octave of each backend, measured. Octave peaks rarely
	// line up, so a sum divided by the total amplitude sits well inside
	// [-1, 1]. We divide by the root sum of squared amplitudes times the gain
	// instead, which puts the bulk of samples across the full range.
	simplexGain = 0.9
	perlinGain  = 0.57
)

// ParseKind returns the Kind for the given name
func ParseKind(in string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(in))) {
	case Simplex, "":
		return Simplex, nil
	case Perlin:
		return Perlin, nil
	}
	return "", fmt.Errorf("unknown noise kind %q", in)
}

// source is a single octave of coherent noise in roughly [-1, 1]
type source func(x, y float64) float64

// Field is a seeded fractal noise function sampled at a fixed frequency.
type Field struct {
	src       source
	frequency float64
	octaves   int
	norm      float64
}

// New builds a Field from the given primitive, seed & base frequency.
func New(kind Kind, seed int64, frequency float64, octaves int) *Field {
	if octaves <= 0 {
		octaves = DefaultOctaves
	}

	var src source
	gain := simplexGain
	switch kind {
	case Perlin:
		p := perlin.NewPerlin(perlinAlpha, perlinBeta, 1, seed)
		src = p.Noise2D
		gain = perlinGain
	default:
		s := opensimplex.New(seed)
		src = s.Eval2
	}

	sq := 0.0
	amp := 1.0
	for i := 0; i < octaves; i++ {
		sq += amp * amp
		amp *= persistence
	}
	norm := math.Sqrt(sq) * gain

	return &Field{src: src, frequency: frequency, octaves: octaves, norm: norm}
}

// Sample returns fractal brownian motion at x,y in [-1, 1]
func (f *Field) Sample(x, y float64) float64 {
	total := 0.0
	amp := 1.0
	freq := f.frequency
	for i := 0; i < f.octaves; i++ {
		total += f.src(x*freq, y*freq) * amp
		amp *= persistence
		freq *= lacunarity
	}
	return math.Max(-1, math.Min(1, total/f.norm))
}
