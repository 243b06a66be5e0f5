package mapgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepNoWrapOffEdgeFails(t *testing.T) {
	_, ok := Step(3, 3, 2, 0, North, WrapNone)
	assert.False(t, ok)
	_, ok = Step(3, 3, 0, 0, South, WrapNone)
	assert.False(t, ok)
	_, ok = Step(3, 3, 0, 2, East, WrapNone)
	assert.False(t, ok)
	_, ok = Step(3, 3, 0, 0, West, WrapNone)
	assert.False(t, ok)
}

func TestStepWithinBoundsAlwaysSucceeds(t *testing.T) {
	p, ok := Step(3, 3, 1, 1, North, WrapNone)
	assert.True(t, ok)
	assert.Equal(t, Point{Row: 2, Col: 1}, p)
}

func TestStepCylinderWrapsEastWestOnly(t *testing.T) {
	_, ok := Step(3, 3, 2, 0, North, WrapCylinder)
	assert.False(t, ok)
	p, ok := Step(3, 3, 0, 2, East, WrapCylinder)
	assert.True(t, ok)
	assert.Equal(t, Point{Row: 0, Col: 0}, p)
	p, ok = Step(3, 3, 0, 0, West, WrapCylinder)
	assert.True(t, ok)
	assert.Equal(t, Point{Row: 0, Col: 2}, p)
}

func TestStepTorusWrapsBothAxes(t *testing.T) {
	p, ok := Step(3, 3, 2, 0, North, WrapTorus)
	assert.True(t, ok)
	assert.Equal(t, Point{Row: 0, Col: 0}, p)
	p, ok = Step(3, 3, 0, 0, South, WrapTorus)
	assert.True(t, ok)
	assert.Equal(t, Point{Row: 2, Col: 0}, p)
}
