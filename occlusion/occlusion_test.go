package occlusion

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"zprobe/zgl"
)

// fakeView returns the same projection and depth sample for every point,
// standing in for a rendered scene.
type fakeView struct {
	vp    zgl.Viewport
	pp    zgl.ProjectedPoint
	ok    bool
	depth float32
}

func (f fakeView) Project(mgl32.Vec3) (zgl.ProjectedPoint, bool) { return f.pp, f.ok }
func (f fakeView) DepthAt(x, y int) float32                      { return f.depth }
func (f fakeView) Bounds() zgl.Viewport                          { return f.vp }

func TestOccludedClassification(t *testing.T) {
	vp := zgl.Viewport{W: 640, H: 480}
	at := zgl.ProjectedPoint{X: 100, Y: 100, PX: 100, PY: 100, Depth: 0.5}

	tests := []struct {
		name   string
		buffer float32
		want   bool
	}{
		{"equal depth is the point itself", 0.5, false},
		{"within epsilon below", 0.5 - 0.0009, false},
		{"within epsilon above", 0.5 + 0.0009, false},
		{"buffer strictly nearer", 0.4, true},
		{"buffer strictly farther", 0.9, false},
		{"buffer at far value", 1.0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := fakeView{vp: vp, pp: at, ok: true, depth: tt.buffer}
			assert.Equal(t, tt.want, Occluded(v, mgl32.Vec3{}))
		})
	}
}

func TestOccludedOffViewPolicy(t *testing.T) {
	vp := zgl.Viewport{W: 640, H: 480}

	// Projection failure (behind the eye / outside near-far): visible,
	// even with the nearest possible buffer depth.
	v := fakeView{vp: vp, ok: false, depth: 0}
	assert.False(t, Occluded(v, mgl32.Vec3{}))

	// Projects fine but lands outside the viewport: visible.
	v = fakeView{
		vp:    vp,
		pp:    zgl.ProjectedPoint{X: 700.2, Y: 100, PX: 700, PY: 100, Depth: 0.5},
		ok:    true,
		depth: 0,
	}
	assert.False(t, Occluded(v, mgl32.Vec3{}))
}

func TestOccludedIdempotent(t *testing.T) {
	v := fakeView{
		vp:    zgl.Viewport{W: 640, H: 480},
		pp:    zgl.ProjectedPoint{PX: 10, PY: 10, Depth: 0.8},
		ok:    true,
		depth: 0.3,
	}
	p := mgl32.Vec3{1, 2, 3}
	first := Occluded(v, p)
	assert.Equal(t, first, Occluded(v, p))
	assert.True(t, first)
}
