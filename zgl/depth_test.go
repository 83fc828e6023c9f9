package zgl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDepthBufferStartsCleared(t *testing.T) {
	b := NewDepthBuffer(Viewport{W: 8, H: 6})
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			assert.Equal(t, FarDepth, b.At(x, y))
		}
	}
}

func TestDepthTestKeepsNearest(t *testing.T) {
	b := NewDepthBuffer(Viewport{W: 8, H: 6})

	assert.True(t, b.test(2, 3, 0.5))
	assert.Equal(t, float32(0.5), b.At(2, 3))

	// Farther fragment loses.
	assert.False(t, b.test(2, 3, 0.7))
	assert.Equal(t, float32(0.5), b.At(2, 3))

	// Nearer fragment wins.
	assert.True(t, b.test(2, 3, 0.3))
	assert.Equal(t, float32(0.3), b.At(2, 3))
}

func TestDepthOutOfBoundsReadsFar(t *testing.T) {
	b := NewDepthBuffer(Viewport{W: 8, H: 6})
	assert.Equal(t, FarDepth, b.At(-1, 0))
	assert.Equal(t, FarDepth, b.At(8, 0))
	assert.Equal(t, FarDepth, b.At(0, 6))
	assert.False(t, b.test(8, 0, 0.1))
}

func TestClearResetsToFar(t *testing.T) {
	b := NewDepthBuffer(Viewport{W: 8, H: 6})
	b.test(1, 1, 0.25)
	b.Clear()
	assert.Equal(t, FarDepth, b.At(1, 1))
}
