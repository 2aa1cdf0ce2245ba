package landmass

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
)

// clamp to [-1, 1]
func clamp(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}

// toByte maps a value in [-1, 1] to [0, 254] (127 * (v + 1))
func toByte(v float64) uint8 {
	return uint8(127.0 * (clamp(v) + 1.0))
}

// shade scales a colour by f in [0, 1]
func shade(c color.Color, f float64) color.RGBA {
	r, g, b, _ := c.RGBA()
	return color.RGBA{
		R: uint8(float64(r>>8) * f),
		G: uint8(float64(g>>8) * f),
		B: uint8(float64(b>>8) * f),
		A: 255,
	}
}

// savePNG to disk
func savePNG(fpath string, in image.Image) error {
	err := gg.SavePNG(fpath, in)
	return errors.Wrapf(err, "failed to save %s", fpath)
}
