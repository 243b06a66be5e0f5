package mapgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompassZeroValueClosed(t *testing.T) {
	var c Compass
	for _, d := range AllDirections {
		assert.False(t, c.HasDir(d))
	}
	assert.Equal(t, 0, c.NumExits())
}

func TestCompassAddRemoveDir(t *testing.T) {
	var c Compass
	c = c.AddDir(North)
	assert.True(t, c.HasDir(North))
	assert.False(t, c.HasDir(East))
	assert.Equal(t, 1, c.NumExits())
	assert.True(t, c.IsDeadEnd())

	c = c.AddDir(East)
	assert.Equal(t, 2, c.NumExits())
	assert.False(t, c.IsDeadEnd())

	c = c.RemoveDir(North)
	assert.False(t, c.HasDir(North))
	assert.True(t, c.HasDir(East))
}

func TestCompassAllFourExits(t *testing.T) {
	var c Compass
	for _, d := range AllDirections {
		c = c.AddDir(d)
	}
	assert.Equal(t, 4, c.NumExits())
}
