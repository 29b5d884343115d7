package sim

import "sort"

// degenerateDist is the pair distance below which a collision is skipped
// to avoid a zero-length normal.
const degenerateDist = 0.01

// step advances every particle by one sub-step of duration h inside the
// walls (0,0)-(w,h). Particles are processed in ascending index order;
// each particle first integrates gravity (semi-implicit Euler) and
// resolves wall contact, then resolves pairs (i,j) with j > i in
// ascending order. Updates apply in place, so the result is
// order-dependent but bit-reproducible for a fixed sub-step count.
func (s *State) step(w, h, dt float64) {
	var cand [][]int
	if s.UseIndex {
		cand = s.candidates(w, h, dt)
	}

	for i := range s.Particles {
		p := &s.Particles[i]

		p.Vel = p.Vel.Add(s.Gravity.Scale(dt))
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))

		// Right wall
		if p.Pos.X+p.Radius > w {
			p.Pos.X = w - p.Radius
			if p.Vel.X > 0 {
				p.Vel.X *= -s.Elasticity
				p.Vel.Y *= 1 - s.Friction
			}
		}

		// Left wall
		if p.Pos.X-p.Radius < 0 {
			p.Pos.X = p.Radius
			if p.Vel.X < 0 {
				p.Vel.X *= -s.Elasticity
				p.Vel.Y *= 1 - s.Friction
			}
		}

		// Bottom wall
		if p.Pos.Y+p.Radius > h {
			p.Pos.Y = h - p.Radius
			if p.Vel.Y > 0 {
				p.Vel.Y *= -s.Elasticity
				p.Vel.X *= 1 - s.Friction
			}
		}

		// Top wall
		if p.Pos.Y-p.Radius < 0 {
			p.Pos.Y = p.Radius
			if p.Vel.Y < 0 {
				p.Vel.Y *= -s.Elasticity
				p.Vel.X *= 1 - s.Friction
			}
		}

		if cand != nil {
			for _, j := range cand[i] {
				if j > i {
					s.collide(i, j)
				}
			}
		} else {
			for j := i + 1; j < len(s.Particles); j++ {
				s.collide(i, j)
			}
		}
	}
}

// collide resolves the pair (i,j), i != j: positional correction pushes
// the particles apart along the contact normal, the normal relative
// velocity reverses scaled by elasticity, and the tangential relative
// velocity is scaled by 1-friction. Coincident centers are skipped.
func (s *State) collide(i, j int) {
	p1 := &s.Particles[i]
	p2 := &s.Particles[j]

	delta := p2.Pos.Sub(p1.Pos)
	dist := delta.Len()

	overlap := p1.Radius + p2.Radius - dist
	if overlap <= 0 || dist < degenerateDist {
		return
	}

	normal := delta.Scale(1.0 / dist)
	rel := p2.Vel.Sub(p1.Vel).Scale(0.5)

	// Push them out of each other
	p1.Pos = p1.Pos.Sub(normal.Scale(overlap * 0.5))
	p2.Pos = p2.Pos.Add(normal.Scale(overlap * 0.5))

	velAlongNormal := normal.Scale(normal.Dot(rel))
	velAlongTangent := rel.Sub(velAlongNormal)

	p1.Vel = p1.Vel.Add(rel)
	p2.Vel = p2.Vel.Sub(rel)

	p1.Vel = p1.Vel.Add(velAlongNormal.Scale(s.Elasticity))
	p2.Vel = p2.Vel.Sub(velAlongNormal.Scale(s.Elasticity))

	p1.Vel = p1.Vel.Sub(velAlongTangent.Scale(1 - s.Friction))
	p2.Vel = p2.Vel.Add(velAlongTangent.Scale(1 - s.Friction))
}

// candidates rebuilds the spatial tree over the pre-step positions and
// returns, for each particle, the sorted indices it must test pairs
// against: its own leaf plus every leaf overlapping its leaf's rectangle
// expanded by a pad. The pad covers two contact radii, the positional
// corrections a pair can apply, and the furthest any particle can move
// within this sub-step, so no overlapping pair is ever pruned away.
func (s *State) candidates(w, h, dt float64) [][]int {
	tree := BuildTree(Vec2{}, Vec2{X: w, Y: h}, s.allIndices(), s.Particles)
	byItem := tree.leafIndex(len(s.Particles))

	maxSpeed := 0.0
	for i := range s.Particles {
		if v := s.Particles[i].Vel.Len(); v > maxSpeed {
			maxSpeed = v
		}
	}
	maxSpeed += s.Gravity.Len() * dt
	pad := 4*s.maxRadius() + 2*maxSpeed*dt

	perLeaf := make(map[*Cell][]int)
	out := make([][]int, len(s.Particles))
	for i := range s.Particles {
		leaf := byItem[i]
		list, ok := perLeaf[leaf]
		if !ok {
			list = append(list, leaf.Items...)
			for _, nb := range tree.Neighbors(leaf, pad) {
				list = append(list, nb.Items...)
			}
			sort.Ints(list)
			perLeaf[leaf] = list
		}
		out[i] = list
	}
	return out
}
