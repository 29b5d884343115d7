package sim

// applyDrag grabs every particle under the pointer while the primary
// button is held: the particle snaps to the pointer position and takes
// its velocity from the pointer delta scaled back to pixels. All
// qualifying particles are affected; callers wanting single selection
// must filter upstream.
func (s *State) applyDrag(f Frame, dt float64) {
	if !f.Pointer.Down {
		return
	}
	for i := range s.Particles {
		p := &s.Particles[i]
		if f.Pointer.Pos.Sub(p.Pos).Len() < p.Radius {
			p.Vel = Vec2{
				X: -f.Pointer.Delta.X * f.Width,
				Y: -f.Pointer.Delta.Y * f.Height,
			}.Scale(0.5 / dt)
			p.Pos = f.Pointer.Pos
		}
	}
}
