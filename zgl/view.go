package zgl

import (
	"github.com/go-gl/mathgl/mgl32"
)

// RenderedView binds a camera to the depth buffer left by a completed render
// pass, giving read-only access to projection and depth sampling. The view
// and projection matrices are fixed at construction, so every query sees the
// same transform the render pass used.
type RenderedView struct {
	view  mgl32.Mat4
	proj  mgl32.Mat4
	depth *DepthBuffer
}

// NewRenderedView captures cam's matrices against depth's viewport.
func NewRenderedView(cam Camera, depth *DepthBuffer) *RenderedView {
	vp := depth.Viewport()
	return &RenderedView{
		view:  cam.View(),
		proj:  cam.Projection(vp.Aspect()),
		depth: depth,
	}
}

// Project maps a world-space point to window coordinates.
func (v *RenderedView) Project(p mgl32.Vec3) (ProjectedPoint, bool) {
	return Project(p, v.view, v.proj, v.depth.Viewport())
}

// DepthAt returns the stored depth at pixel (x, y).
func (v *RenderedView) DepthAt(x, y int) float32 {
	return v.depth.At(x, y)
}

// Bounds reports the viewport extent.
func (v *RenderedView) Bounds() Viewport {
	return v.depth.Viewport()
}
