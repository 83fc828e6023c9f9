// Package occlusion classifies points as visible or hidden by sampling a
// rendered depth buffer, and checks the outcome against geometric ground
// truth.
package occlusion

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"zprobe/scene"
	"zprobe/zgl"
)

// Epsilon is the tolerance for depth equality: a point whose projected depth
// is within Epsilon of the buffer sample counts as the surface at that pixel.
const Epsilon float32 = 0.001

// View is the rendered scene as the tester sees it: a fixed projection into
// window coordinates plus the depth buffer the render pass left behind. A
// depth-buffered renderer provides the real implementation; tests can supply
// a synthetic one.
type View interface {
	// Project maps a world-space point to window coordinates. ok is false
	// when the point cannot be sampled (behind the eye or outside the
	// near/far depth range).
	Project(p mgl32.Vec3) (zgl.ProjectedPoint, bool)

	// DepthAt returns the normalized depth stored at pixel (x, y).
	DepthAt(x, y int) float32

	// Bounds reports the viewport extent.
	Bounds() zgl.Viewport
}

// Occluded reports whether rendered geometry hides p from the camera.
//
// The point is projected, the depth buffer sampled at its pixel, and the two
// depths compared three ways: equal within Epsilon means the point is itself
// the nearest surface there (visible); a strictly nearer buffer sample means
// something sits in front of it (occluded); a strictly farther sample means
// nothing rendered blocks it (visible).
//
// Points that project outside the viewport or the near/far range are
// reported visible: the buffer holds no occluder evidence for them. Note
// this is a statement about the rendered scene, not about geometry — a point
// can be geometrically behind the plane yet report visible because no
// fragment covers its pixel.
//
// The classification is pure and deterministic: one projection, one buffer
// read, no hidden state.
func Occluded(v View, p mgl32.Vec3) bool {
	pp, ok := v.Project(p)
	if !ok || !v.Bounds().Contains(pp.PX, pp.PY) {
		return false
	}
	buf := v.DepthAt(pp.PX, pp.PY)
	if math32.Abs(buf-pp.Depth) <= Epsilon {
		return false
	}
	return buf < pp.Depth
}

// Result records one point's expected and computed classification.
type Result struct {
	Point    scene.Point
	Expected bool
	Occluded bool
}

// Match reports whether the computed classification agrees with the
// geometric ground truth.
func (r Result) Match() bool { return r.Expected == r.Occluded }

// Run classifies every point against the rendered view. Results keep the
// input order.
func Run(v View, points []scene.Point) []Result {
	out := make([]Result, len(points))
	for i, pt := range points {
		out[i] = Result{
			Point:    pt,
			Expected: pt.Occluded,
			Occluded: Occluded(v, pt.Pos),
		}
	}
	return out
}
