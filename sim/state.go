package sim

import (
	"fmt"
	"math"
)

// Config holds the construction inputs for a State.
type Config struct {
	Count      int     // initial particle count
	Radius     float64 // shared particle radius, pixels
	Gravity    Vec2    // constant acceleration, pixels/s^2
	Friction   float64 // tangential speed removed across a contact, [0,1]
	Elasticity float64 // normal speed preserved across a bounce
	TargetRate float64 // desired simulation step rate, Hz
	UseIndex   bool    // prune pair tests with the spatial tree
	Seed       int64   // palette noise seed
}

// DefaultConfig is the reference scene: 500 particles of radius 10 laid
// out on a 100x5 grid at (100,100).
func DefaultConfig() Config {
	return Config{
		Count:      500,
		Radius:     10,
		Gravity:    Vec2{X: 10, Y: 400},
		Friction:   0,
		Elasticity: 0.8,
		TargetRate: 60,
		UseIndex:   true,
		Seed:       1,
	}
}

// Pointer is the host-reported pointing device state for one frame.
// Delta is the screen movement since the previous frame normalized by the
// viewport extent, with the sign convention that dragging right yields a
// negative Delta.X (the drag handler negates it back).
type Pointer struct {
	Pos   Vec2
	Delta Vec2
	Down  bool
}

// Frame is everything the host supplies per display frame.
type Frame struct {
	Width, Height float64 // viewport, pixels
	Pointer       Pointer
	DT            float64 // wall-clock frame duration, seconds
}

// State owns the particle population, the current spatial tree and the
// simulation coefficients. It is the only mutable state in the core; all
// mutation happens inside Update. Not safe for concurrent use.
type State struct {
	Particles []Particle
	Grid      *Cell // rebuilt each frame; indexes into Particles

	Gravity    Vec2
	Friction   float64
	Elasticity float64
	UseIndex   bool

	pacer  pacer
	lastDT float64
}

// NewState validates cfg and builds the initial scene: particles on a
// 100-wide grid starting at (100,100) with zero velocity, colored from a
// perlin noise field over their grid position.
func NewState(cfg Config) (*State, error) {
	if cfg.Count <= 0 {
		return nil, fmt.Errorf("sim: particle count must be positive, got %d", cfg.Count)
	}
	if !(cfg.Radius > 0) || math.IsInf(cfg.Radius, 0) {
		return nil, fmt.Errorf("sim: radius must be positive and finite, got %v", cfg.Radius)
	}
	if cfg.Friction < 0 || cfg.Friction > 1 || math.IsNaN(cfg.Friction) {
		return nil, fmt.Errorf("sim: friction must be in [0,1], got %v", cfg.Friction)
	}
	if cfg.Elasticity < 0 || math.IsNaN(cfg.Elasticity) || math.IsInf(cfg.Elasticity, 0) {
		return nil, fmt.Errorf("sim: elasticity must be non-negative and finite, got %v", cfg.Elasticity)
	}
	if !(cfg.TargetRate > 0) || math.IsInf(cfg.TargetRate, 0) {
		return nil, fmt.Errorf("sim: target rate must be positive and finite, got %v", cfg.TargetRate)
	}
	if !isFinite(cfg.Gravity.X) || !isFinite(cfg.Gravity.Y) {
		return nil, fmt.Errorf("sim: gravity must be finite, got %+v", cfg.Gravity)
	}

	pal := newPalette(cfg.Seed)
	particles := make([]Particle, cfg.Count)
	for i := range particles {
		pos := Vec2{X: 100 + float64(i%100), Y: 100 + float64(i/100)}
		particles[i] = Particle{
			Pos:    pos,
			Radius: cfg.Radius,
			Color:  pal.at(pos),
		}
	}

	return &State{
		Particles:  particles,
		Gravity:    cfg.Gravity,
		Friction:   cfg.Friction,
		Elasticity: cfg.Elasticity,
		UseIndex:   cfg.UseIndex,
		pacer:      pacer{rate: cfg.TargetRate},
	}, nil
}

// Update advances the simulation by one display frame: apply the pointer
// drag, plan the sub-step count from the frame duration, run the
// sub-steps, then rebuild the spatial tree over the new positions.
// A zero frame duration reuses the previous frame's value.
func (s *State) Update(f Frame) error {
	if err := checkFrame(f); err != nil {
		return err
	}

	dt := f.DT
	if dt <= 0 {
		dt = s.lastDT
	}
	if dt <= 0 {
		dt = 1.0 / s.pacer.rate
	}

	s.applyDrag(f, dt)

	n := s.pacer.plan(dt)
	h := dt / float64(n)
	for k := 0; k < n; k++ {
		s.step(f.Width, f.Height, h)
	}

	s.Grid = BuildTree(Vec2{}, Vec2{X: f.Width, Y: f.Height}, s.allIndices(), s.Particles)
	s.lastDT = dt
	return nil
}

// IterCount reports the sub-step count chosen for the last frame, for
// the host's HUD.
func (s *State) IterCount() int {
	return s.pacer.last
}

func (s *State) allIndices() []int {
	idx := make([]int, len(s.Particles))
	for i := range idx {
		idx[i] = i
	}
	return idx
}

func (s *State) maxRadius() float64 {
	r := 0.0
	for i := range s.Particles {
		if s.Particles[i].Radius > r {
			r = s.Particles[i].Radius
		}
	}
	return r
}

func checkFrame(f Frame) error {
	if !(f.Width > 0) || !(f.Height > 0) || math.IsInf(f.Width, 0) || math.IsInf(f.Height, 0) {
		return fmt.Errorf("sim: viewport must be positive and finite, got %vx%v", f.Width, f.Height)
	}
	if !isFinite(f.DT) || f.DT < 0 {
		return fmt.Errorf("sim: frame duration must be finite and non-negative, got %v", f.DT)
	}
	p := f.Pointer
	if !isFinite(p.Pos.X) || !isFinite(p.Pos.Y) || !isFinite(p.Delta.X) || !isFinite(p.Delta.Y) {
		return fmt.Errorf("sim: pointer state must be finite, got %+v", p)
	}
	return nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
