package sim

import "image/color"

// Canvas is the sink for renderable primitives. The core emits drawing
// commands through it and never performs windowing itself; a failure in
// the sink is the host's concern.
type Canvas interface {
	FillCircle(x, y, r float64, c color.RGBA)
	StrokeRect(x, y, w, h float64, c color.RGBA)
	Text(x, y, size float64, c color.RGBA, s string)
}

// CommandKind discriminates recorded draw commands.
type CommandKind int

const (
	CommandFillCircle CommandKind = iota
	CommandStrokeRect
	CommandText
)

// Command is one recorded draw call.
type Command struct {
	Kind  CommandKind
	X, Y  float64
	R     float64
	W, H  float64
	Size  float64
	Color color.RGBA
	Text  string
}

// Recorder is a Canvas that accumulates a flat command list, for hosts
// that batch their draw calls and for tests.
type Recorder struct {
	Commands []Command
}

func (r *Recorder) FillCircle(x, y, rad float64, c color.RGBA) {
	r.Commands = append(r.Commands, Command{Kind: CommandFillCircle, X: x, Y: y, R: rad, Color: c})
}

func (r *Recorder) StrokeRect(x, y, w, h float64, c color.RGBA) {
	r.Commands = append(r.Commands, Command{Kind: CommandStrokeRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) Text(x, y, size float64, c color.RGBA, s string) {
	r.Commands = append(r.Commands, Command{Kind: CommandText, X: x, Y: y, Size: size, Color: c, Text: s})
}

var gridColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// Draw emits one filled circle per particle and, when showGrid is set,
// one rectangle outline per leaf of the spatial tree.
func (s *State) Draw(c Canvas, showGrid bool) {
	for i := range s.Particles {
		p := &s.Particles[i]
		c.FillCircle(p.Pos.X, p.Pos.Y, p.Radius, p.Color)
	}
	if showGrid && s.Grid != nil {
		for _, l := range s.Grid.Leaves() {
			c.StrokeRect(l.P1.X, l.P1.Y, l.P2.X-l.P1.X, l.P2.Y-l.P1.Y, gridColor)
		}
	}
}
