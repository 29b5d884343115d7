package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func gridParticles(count int, radius float64) []Particle {
	ps := make([]Particle, count)
	for i := range ps {
		ps[i] = Particle{
			Pos:    Vec2{X: 100 + float64(i%100), Y: 100 + float64(i/100)},
			Radius: radius,
		}
	}
	return ps
}

func indices(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

func TestGridBuild(t *testing.T) {
	particles := gridParticles(500, 10)
	tree := BuildTree(Vec2{}, Vec2{X: 800, Y: 800}, indices(500), particles)

	assert.Equal(t, Vec2{}, tree.P1)
	assert.Equal(t, Vec2{X: 800, Y: 800}, tree.P2)

	seen := make(map[int]int)
	for _, leaf := range tree.Leaves() {
		assert.LessOrEqual(t, len(leaf.Items), maxCellItems)
		for _, i := range leaf.Items {
			seen[i]++
		}
	}
	// every particle in exactly one leaf
	assert.Len(t, seen, 500)
	for i, n := range seen {
		assert.Equal(t, 1, n, "particle %d recorded %d times", i, n)
	}
}

func TestLeafGeometry(t *testing.T) {
	particles := gridParticles(500, 10)
	tree := BuildTree(Vec2{}, Vec2{X: 800, Y: 800}, indices(500), particles)

	for _, leaf := range tree.Leaves() {
		assert.Less(t, leaf.P1.X, leaf.P2.X)
		assert.Less(t, leaf.P1.Y, leaf.P2.Y)
		for _, i := range leaf.Items {
			pos := particles[i].Pos
			assert.GreaterOrEqual(t, pos.X, leaf.P1.X)
			assert.LessOrEqual(t, pos.X, leaf.P2.X)
			assert.GreaterOrEqual(t, pos.Y, leaf.P1.Y)
			assert.LessOrEqual(t, pos.Y, leaf.P2.Y)
		}
	}
}

func TestMidpointTieBreak(t *testing.T) {
	// seven particles force one split; the one exactly on the midpoint
	// must land in the upper-left child
	particles := []Particle{
		{Pos: Vec2{X: 400, Y: 400}, Radius: 10},
		{Pos: Vec2{X: 100, Y: 100}, Radius: 10},
		{Pos: Vec2{X: 150, Y: 100}, Radius: 10},
		{Pos: Vec2{X: 500, Y: 100}, Radius: 10},
		{Pos: Vec2{X: 100, Y: 500}, Radius: 10},
		{Pos: Vec2{X: 500, Y: 500}, Radius: 10},
		{Pos: Vec2{X: 600, Y: 600}, Radius: 10},
	}
	tree := BuildTree(Vec2{}, Vec2{X: 800, Y: 800}, indices(len(particles)), particles)

	if assert.NotNil(t, tree.Children) {
		ul := tree.Children[0]
		assert.Equal(t, Vec2{X: 400, Y: 400}, ul.P2)
		assert.Contains(t, ul.Items, 0)
	}
}

func TestRecursionFloor(t *testing.T) {
	// ten coincident centers can never be separated; the floor must stop
	// the subdivision instead of recursing forever
	particles := make([]Particle, 10)
	for i := range particles {
		particles[i] = Particle{Pos: Vec2{X: 400, Y: 400}, Radius: 10}
	}
	tree := BuildTree(Vec2{}, Vec2{X: 800, Y: 800}, indices(10), particles)

	total := 0
	for _, leaf := range tree.Leaves() {
		total += len(leaf.Items)
	}
	assert.Equal(t, 10, total)
}

func TestNeighbors(t *testing.T) {
	particles := gridParticles(500, 10)
	tree := BuildTree(Vec2{}, Vec2{X: 800, Y: 800}, indices(500), particles)

	leaves := tree.Leaves()
	for _, leaf := range leaves {
		for _, nb := range tree.Neighbors(leaf, 0) {
			assert.NotSame(t, leaf, nb)
			assert.True(t, nb.P1.X <= leaf.P2.X && nb.P2.X >= leaf.P1.X)
			assert.True(t, nb.P1.Y <= leaf.P2.Y && nb.P2.Y >= leaf.P1.Y)
		}
	}
}

func TestNeighborQuerySoundness(t *testing.T) {
	// any particle within 2*rmax of p must be found in p's leaf or in a
	// padded neighbor of it
	rng := rand.New(rand.NewSource(7))
	const rmax = 10.0
	particles := make([]Particle, 200)
	for i := range particles {
		particles[i] = Particle{
			Pos:    Vec2{X: rng.Float64() * 800, Y: rng.Float64() * 800},
			Radius: rmax,
		}
	}
	tree := BuildTree(Vec2{}, Vec2{X: 800, Y: 800}, indices(len(particles)), particles)
	byItem := tree.leafIndex(len(particles))

	for i := range particles {
		leaf := byItem[i]
		reach := map[int]bool{}
		for _, j := range leaf.Items {
			reach[j] = true
		}
		for _, nb := range tree.Neighbors(leaf, 2*rmax) {
			for _, j := range nb.Items {
				reach[j] = true
			}
		}
		for j := range particles {
			if j == i {
				continue
			}
			if particles[j].Pos.Sub(particles[i].Pos).Len() < 2*rmax {
				assert.True(t, reach[j], "particle %d near %d not reachable", j, i)
			}
		}
	}
}
