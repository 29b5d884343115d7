package sim

// pacer chooses the sub-step count for each frame from the previous
// frame's count, keeping the effective sub-step duration near 1/rate
// regardless of the display frame rate.
type pacer struct {
	rate float64 // target simulation step rate, Hz
	last int     // sub-step count chosen for the previous frame
}

// plan returns the sub-step count for a frame of duration dt and stores
// it for the next frame. The first frame always plans a single step.
func (p *pacer) plan(dt float64) int {
	n := 1
	if p.last != 0 {
		desired := 1.0 / p.rate
		n = int(float64(p.last) * desired / dt)
		if n < 1 {
			n = 1
		}
	}
	p.last = n
	return n
}
