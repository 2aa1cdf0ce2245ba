package landmass

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
)

var (
	// ErrUnknownLayer implies we were asked to render a layer we don't have.
	ErrUnknownLayer = errors.New("unknown layer")
)

// Layer names one of the float maps of a Landmass
type Layer string

const (
	LayerHeight        Layer = "height"
	LayerPrecipitation Layer = "precipitation"
	LayerTemperature   Layer = "temperature"
)

// LandMap is a graphical representation of a Landmass.
// It only reads the landmass, nothing here can be loaded back in.
type LandMap interface {
	// Save as an image with the default colour scheme
	Save(fpath string) error

	// SaveAdv saves as an image with the given colour scheme
	SaveAdv(fpath string, scheme *ColourScheme) error

	// CustomImage returns an image with the given colour scheme
	CustomImage(scheme *ColourScheme) (image.Image, error)

	// Layer returns a greyscale image of one of the float maps
	Layer(layer Layer) (image.Image, error)

	// SaveLayer writes Layer() to disk
	SaveLayer(fpath string, layer Layer) error
}

// ColourScheme defines how biomes & features should be coloured.
type ColourScheme struct {
	// Scale is the size (in pixels) of each tile; 1 if not given
	Scale int

	RiverSource color.Color
	River       color.Color
	Ocean       color.Color
	Biomes      map[Biome]color.Color
}

// DefaultScheme returns a reasonable default ColourScheme.
func DefaultScheme() *ColourScheme {
	return &ColourScheme{
		Scale:       4,
		RiverSource: colornames.Cyan,
		River:       colornames.Dodgerblue,
		Ocean:       colornames.Navy,
		Biomes: map[Biome]color.Color{
			Tundra:                  color.RGBA{147, 168, 173, 255},
			BorealForest:            color.RGBA{0, 80, 70, 255},
			TemperateRainforest:     color.RGBA{25, 55, 0, 255},
			TemperateSeasonalForest: color.RGBA{145, 215, 70, 255},
			Shrubland:               color.RGBA{130, 150, 100, 255},
			ColdDesert:              color.RGBA{210, 190, 140, 255},
			TropicalRainforest:      color.RGBA{48, 127, 55, 255},
			Savanna:                 color.RGBA{202, 139, 43, 255},
			SubtropicalDesert:       color.RGBA{245, 200, 80, 255},
		},
	}
}

// scale returns the pixel size of a tile
func (s *ColourScheme) scale() int {
	if s.Scale < 1 {
		return 1
	}
	return s.Scale
}

// imageMap is our LandMap, it paints straight from the landmass maps
type imageMap struct {
	land *Landmass
}

// Map returns a LandMap for drawing the landmass.
func (l *Landmass) Map() LandMap {
	return &imageMap{land: l}
}

// Save the map with the DefaultScheme
func (m *imageMap) Save(fpath string) error {
	return m.SaveAdv(fpath, DefaultScheme())
}

// SaveAdv essentially saves the LandMap using the given scheme to disk.
// Essentially sugar around "CustomImage()" followed by writing out a PNG.
func (m *imageMap) SaveAdv(fpath string, scheme *ColourScheme) error {
	im, err := m.CustomImage(scheme)
	if err != nil {
		return err
	}
	return savePNG(fpath, im)
}

// CustomImage returns the LandMap coloured with the given scheme.
//
// Tiles with a feature get the feature colour (ocean & rivers darker where
// deeper), otherwise the biome colour shaded by height.
func (m *imageMap) CustomImage(scheme *ColourScheme) (image.Image, error) {
	if scheme == nil {
		return nil, errors.New("nil colour scheme")
	}
	scale := scheme.scale()
	land := m.land

	ctx := gg.NewContext(land.Width()*scale, land.Height()*scale)

	var err error
	land.HeightMap.Each(func(x, y int, h float64) {
		if err != nil {
			return
		}
		light := (1.0 + h) / 2.0

		base, f := color.Color(nil), light
		switch land.Feature(x, y) {
		case RiverSource:
			base, f = scheme.RiverSource, 1
		case River:
			base, f = scheme.River, 0.5+light/2
		case Ocean:
			base, f = scheme.Ocean, 0.5+light/2
		default:
			base = scheme.Biomes[land.BiomeMap.Get(x, y)]
		}
		if base == nil {
			err = errors.Errorf("no colour for tile (%d,%d) %s %s", x, y, land.Feature(x, y), land.BiomeMap.Get(x, y))
			return
		}
		col := shade(base, f)

		ctx.SetColor(col)
		ctx.DrawRectangle(float64(x*scale), float64(y*scale), float64(scale), float64(scale))
		ctx.Fill()
	})
	if err != nil {
		return nil, err
	}

	return ctx.Image(), nil
}

// Layer returns a greyscale image of the given map, one pixel per tile.
func (m *imageMap) Layer(layer Layer) (image.Image, error) {
	var g *Grid[float64]
	switch layer {
	case LayerHeight:
		g = m.land.HeightMap
	case LayerPrecipitation:
		g = m.land.PrecipMap
	case LayerTemperature:
		g = m.land.TemperatureMap
	default:
		return nil, errors.Wrapf(ErrUnknownLayer, "%q", layer)
	}

	im := image.NewGray(image.Rect(0, 0, g.Width(), g.Height()))
	g.Each(func(x, y int, v float64) {
		im.SetGray(x, y, color.Gray{Y: toByte(v)})
	})
	return im, nil
}

// SaveLayer writes a greyscale layer to disk
func (m *imageMap) SaveLayer(fpath string, layer Layer) error {
	im, err := m.Layer(layer)
	if err != nil {
		return err
	}
	return savePNG(fpath, im)
}
