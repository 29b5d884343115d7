package sim

const (
	// maxCellItems is the membership threshold past which a leaf splits.
	maxCellItems = 6
	// minCellExtent is the recursion floor: a cell this small never splits,
	// even when many particle centers coincide inside it.
	minCellExtent = 1e-3
)

// Cell is a node of the spatial tree: an axis-aligned rectangle that is
// either a leaf carrying particle indices or an internal node with four
// equal quadrants ordered {upper-left, upper-right, lower-left, lower-right}.
// Items index into the owning State.Particles slice; the tree never outlives
// that slice and is rebuilt from scratch whenever positions change.
type Cell struct {
	P1, P2   Vec2 // upper-left and lower-right corners, P1.X < P2.X, P1.Y < P2.Y
	Children *[4]*Cell
	Items    []int
}

// BuildTree builds a tree over the rectangle (p1,p2) holding the given
// particle indices. The parent's item list is partitioned among the four
// children on split, so every index ends up in exactly one leaf. A center
// lying exactly on a midpoint goes to the lower-index quadrant.
func BuildTree(p1, p2 Vec2, items []int, particles []Particle) *Cell {
	c := &Cell{P1: p1, P2: p2, Items: items}
	c.split(particles)
	return c
}

func (c *Cell) split(particles []Particle) {
	if len(c.Items) <= maxCellItems {
		return
	}
	size := c.P2.Sub(c.P1)
	if size.X*0.5 < minCellExtent || size.Y*0.5 < minCellExtent {
		return
	}
	mid := c.P1.Add(size.Scale(0.5))

	var quads [4][]int
	for _, i := range c.Items {
		pos := particles[i].Pos
		q := 0
		if pos.X > mid.X {
			q = 1
		}
		if pos.Y > mid.Y {
			q += 2
		}
		quads[q] = append(quads[q], i)
	}

	c.Children = &[4]*Cell{
		{P1: c.P1, P2: mid, Items: quads[0]},
		{P1: Vec2{X: mid.X, Y: c.P1.Y}, P2: Vec2{X: c.P2.X, Y: mid.Y}, Items: quads[1]},
		{P1: Vec2{X: c.P1.X, Y: mid.Y}, P2: Vec2{X: mid.X, Y: c.P2.Y}, Items: quads[2]},
		{P1: mid, P2: c.P2, Items: quads[3]},
	}
	c.Items = nil

	for _, child := range c.Children {
		child.split(particles)
	}
}

// Leaves returns every leaf of the tree in depth-first child order.
func (c *Cell) Leaves() []*Cell {
	var out []*Cell
	c.appendLeaves(&out)
	return out
}

func (c *Cell) appendLeaves(out *[]*Cell) {
	if c.Children == nil {
		*out = append(*out, c)
		return
	}
	for _, child := range c.Children {
		child.appendLeaves(out)
	}
}

// Neighbors returns every other leaf whose rectangle overlaps the given
// leaf's rectangle expanded by pad on all sides (closed intervals). Circles
// cross cell boundaries, so callers pass a pad covering the largest radius
// they care about.
func (c *Cell) Neighbors(leaf *Cell, pad float64) []*Cell {
	x1, y1 := leaf.P1.X-pad, leaf.P1.Y-pad
	x2, y2 := leaf.P2.X+pad, leaf.P2.Y+pad

	var out []*Cell
	for _, l := range c.Leaves() {
		if l == leaf {
			continue
		}
		if l.P1.X <= x2 && l.P2.X >= x1 && l.P1.Y <= y2 && l.P2.Y >= y1 {
			out = append(out, l)
		}
	}
	return out
}

// leafIndex maps each of n particle indices to its containing leaf.
func (c *Cell) leafIndex(n int) []*Cell {
	byItem := make([]*Cell, n)
	for _, l := range c.Leaves() {
		for _, i := range l.Items {
			byItem[i] = l
		}
	}
	return byItem
}
