package zgl

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// ProjectedPoint is a world-space point mapped to window coordinates.
type ProjectedPoint struct {
	X, Y   float32 // continuous window coordinates
	PX, PY int     // nearest pixel (round to nearest)
	Depth  float32 // normalized depth in [0, 1]
}

// Project maps a world-space point through view and projection matrices into
// window coordinates, the software analogue of gluProject.
//
// ok is false when the point cannot be meaningfully sampled: behind the eye
// (clip w <= 0) or with a depth outside the [near, far] range. Points that
// land outside the viewport in x/y still project; callers check PX/PY against
// the viewport themselves.
func Project(p mgl32.Vec3, view, proj mgl32.Mat4, vp Viewport) (ProjectedPoint, bool) {
	clip := proj.Mul4(view).Mul4x1(p.Vec4(1))
	w := clip.W()
	if w <= 0 {
		return ProjectedPoint{}, false
	}
	inv := 1 / w
	ndcZ := clip.Z() * inv
	if ndcZ < -1 || ndcZ > 1 {
		return ProjectedPoint{}, false
	}

	out := ProjectedPoint{
		X:     (clip.X()*inv + 1) / 2 * float32(vp.W),
		Y:     (clip.Y()*inv + 1) / 2 * float32(vp.H),
		Depth: (ndcZ + 1) / 2,
	}
	out.PX = int(math32.Floor(out.X + 0.5))
	out.PY = int(math32.Floor(out.Y + 0.5))
	return out, true
}
