package sim

import "image/color"

// Particle is a uniformly-sized circular body. Pure data: it is mutated
// only by the stepper and the drag handler, and has no identity beyond
// its index in State.Particles.
type Particle struct {
	Pos    Vec2
	Vel    Vec2
	Radius float64
	Color  color.RGBA
}
