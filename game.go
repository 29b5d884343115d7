package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/jvreeland/particlebox/sim"
)

var (
	backgroundColor = color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff}
	hudColor        = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Game drives the simulation from Ebitengine's frame loop and owns
// everything the core leaves to the host: windowing, input polling,
// frame timing and the HUD.
type Game struct {
	cfg      hostConfig
	state    *sim.State
	showGrid bool
	paused   bool

	lastTime       time.Time
	lastMX, lastMY float64
	haveMouse      bool
}

// Update is called each tick by Ebitengine
func (g *Game) Update() error {
	now := time.Now()
	dt := 0.0
	if !g.lastTime.IsZero() {
		dt = now.Sub(g.lastTime).Seconds()
	}
	g.lastTime = now

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.showGrid = !g.showGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		state, err := sim.NewState(g.cfg.simConfig())
		if err != nil {
			return err
		}
		g.state = state
	}

	w := float64(g.cfg.Window.Width)
	h := float64(g.cfg.Window.Height)

	mx, my := ebiten.CursorPosition()
	pointer := sim.Pointer{
		Pos:  sim.Vec2{X: float64(mx), Y: float64(my)},
		Down: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
	if g.haveMouse {
		// Normalized by the viewport, previous minus current so the drag
		// handler's negation points along the motion.
		pointer.Delta = sim.Vec2{
			X: (g.lastMX - float64(mx)) / w,
			Y: (g.lastMY - float64(my)) / h,
		}
	}
	g.lastMX, g.lastMY = float64(mx), float64(my)
	g.haveMouse = true

	if g.paused {
		return nil
	}

	return g.state.Update(sim.Frame{Width: w, Height: h, Pointer: pointer, DT: dt})
}

// Draw is called each frame by Ebitengine
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	canvas := &gameCanvas{dst: screen}
	g.state.Draw(canvas, g.showGrid)

	canvas.Text(20, 30, 30, hudColor, fmt.Sprintf("FPS: %d", int(ebiten.ActualFPS())))
	canvas.Text(18, 50, 30, hudColor, fmt.Sprintf("Iter count: %d", g.state.IterCount()))
}

// Layout returns the screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}
