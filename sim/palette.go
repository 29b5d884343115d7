package sim

import (
	"image/color"
	"math"

	"github.com/aquilax/go-perlin"
)

const paletteScale = 0.015 // world pixels to noise coordinates

// palette assigns particle colors from a 2D perlin noise field, so the
// initial block of particles shows smooth color variation.
type palette struct {
	noise *perlin.Perlin
}

func newPalette(seed int64) *palette {
	return &palette{noise: perlin.NewPerlin(2, 2, 3, seed)}
}

// at maps the noise value at pos to a pastel hue.
func (pl *palette) at(pos Vec2) color.RGBA {
	n := pl.noise.Noise2D(pos.X*paletteScale, pos.Y*paletteScale) // roughly [-1,1]
	h := (n + 1) * 180
	r, g, b := hsvToRGB(h, 0.5, 1)
	return color.RGBA{R: uint8(r * 255), G: uint8(g * 255), B: uint8(b * 255), A: 255}
}

// hsvToRGB helper
func hsvToRGB(h, s, v float64) (float64, float64, float64) {
	h = math.Mod(h, 360)
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c
	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return r + m, g + m, b + m
}
