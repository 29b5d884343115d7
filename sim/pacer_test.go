package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPacerFirstFrame(t *testing.T) {
	p := pacer{rate: 60}
	assert.Equal(t, 1, p.plan(1.0/60))
	assert.Equal(t, 1, p.last)
}

func TestPacerDoublyLongFrame(t *testing.T) {
	// previous frame ran 4 sub-steps; this frame is twice as long as the
	// target period, so half as many sub-steps keep h near 1/rate
	p := pacer{rate: 60, last: 4}
	assert.Equal(t, 2, p.plan(2.0/60))
	assert.Equal(t, 2, p.last)
}

func TestPacerFloorsAtOne(t *testing.T) {
	p := pacer{rate: 60, last: 1}
	assert.Equal(t, 1, p.plan(1.0))
}

func TestPacerSteadyState(t *testing.T) {
	p := pacer{rate: 60}
	for i := 0; i < 10; i++ {
		assert.Equal(t, 1, p.plan(1.0/60))
	}
}
