package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// gameCanvas adapts an ebiten.Image to the core's draw sink.
type gameCanvas struct {
	dst *ebiten.Image
}

func (c *gameCanvas) FillCircle(x, y, r float64, col color.RGBA) {
	vector.DrawFilledCircle(c.dst, float32(x), float32(y), float32(r), col, true)
}

func (c *gameCanvas) StrokeRect(x, y, w, h float64, col color.RGBA) {
	vector.StrokeRect(c.dst, float32(x), float32(y), float32(w), float32(h), 1, col, true)
}

// Text uses the debug font, which has a fixed size and color.
func (c *gameCanvas) Text(x, y, size float64, col color.RGBA, s string) {
	ebitenutil.DebugPrintAt(c.dst, s, int(x), int(y))
}
