package landmass

// Sampler is a coherent noise function, in our case something seeded
// at a given frequency. Values are expected to be in [-1, 1].
// See internal/noise for the implementations we use by default.
type Sampler interface {
	Sample(x, y float64) float64
}

// Rand is the uniform randomness the pipeline consumes, draws in [0, 1).
// Noise seeds are derived from the root seed rather than drawn.
// *rand.Rand from math/rand meets this.
type Rand interface {
	Float64() float64
}
