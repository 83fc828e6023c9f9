package scene

import (
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(DefaultSeed, DefaultPoints)
	b := Generate(DefaultSeed, DefaultPoints)
	assert.Equal(t, a, b)
}

func TestGenerateSeedsDiffer(t *testing.T) {
	a := Generate(42, DefaultPoints)
	b := Generate(43, DefaultPoints)
	assert.NotEqual(t, a.Plane.Y, b.Plane.Y)
}

func TestGenerateBounds(t *testing.T) {
	sc := Generate(DefaultSeed, DefaultPoints)

	assert.GreaterOrEqual(t, sc.Plane.Y, planeYMin)
	assert.LessOrEqual(t, sc.Plane.Y, planeYMax)
	assert.Equal(t, PlaneExtent, sc.Plane.Extent)

	require.Len(t, sc.Points, DefaultPoints)
	for _, p := range sc.Points {
		for i := 0; i < 3; i++ {
			assert.GreaterOrEqual(t, p.Pos[i], coordMin, "%s[%d]", p.Label, i)
			assert.LessOrEqual(t, p.Pos[i], coordMax, "%s[%d]", p.Label, i)
		}
	}
}

func TestGenerateProducesBothClasses(t *testing.T) {
	// The point volume straddles the plane's height range, so a 20-point
	// scene holds both cases.
	sc := Generate(DefaultSeed, DefaultPoints)
	var occluded, visible int
	for _, p := range sc.Points {
		if p.Occluded {
			occluded++
		} else {
			visible++
		}
	}
	assert.Positive(t, occluded)
	assert.Positive(t, visible)
}

func TestExpectedRule(t *testing.T) {
	pl := Plane{Y: -2}

	assert.True(t, Expected(pl, mgl32.Vec3{0, -5, 0}))
	assert.False(t, Expected(pl, mgl32.Vec3{0, 3, 0}))
	// On the surface counts as visible.
	assert.False(t, Expected(pl, mgl32.Vec3{0, -2, 0}))
	// Below, but within the tolerance.
	assert.False(t, Expected(pl, mgl32.Vec3{0, -2 - groundEps/2, 0}))
}

func TestPlaneMeshGeometry(t *testing.T) {
	m := Plane{Y: -2, Extent: 10}.Mesh(color.RGBA{A: 0xFF})
	require.Len(t, m.Vertices, 4)
	require.Len(t, m.Indices, 6)
	for _, v := range m.Vertices {
		assert.Equal(t, float32(-2), v.Y())
		assert.Equal(t, float32(10), mgl32.Abs(v.X()))
		assert.Equal(t, float32(10), mgl32.Abs(v.Z()))
	}
}
