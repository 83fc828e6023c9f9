package zgl

// FarDepth is the cleared depth value, the normalized depth of the far plane.
const FarDepth float32 = 1

// DepthBuffer stores one normalized depth sample per pixel.
//
// Samples are in [0, 1]. Row 0 is the bottom of the viewport, matching the
// window coordinates produced by Project.
type DepthBuffer struct {
	vp  Viewport
	buf []float32
}

// NewDepthBuffer allocates a cleared depth buffer for a viewport.
func NewDepthBuffer(vp Viewport) *DepthBuffer {
	b := &DepthBuffer{vp: vp, buf: make([]float32, vp.W*vp.H)}
	b.Clear()
	return b
}

// Viewport returns the buffer extent.
func (b *DepthBuffer) Viewport() Viewport { return b.vp }

// Clear resets every sample to FarDepth.
func (b *DepthBuffer) Clear() {
	for i := range b.buf {
		b.buf[i] = FarDepth
	}
}

// At returns the stored depth at pixel (x, y), or FarDepth out of bounds.
func (b *DepthBuffer) At(x, y int) float32 {
	if !b.vp.Contains(x, y) {
		return FarDepth
	}
	return b.buf[y*b.vp.W+x]
}

// test performs the keep-nearest depth test, storing z when it wins.
func (b *DepthBuffer) test(x, y int, z float32) bool {
	if !b.vp.Contains(x, y) {
		return false
	}
	i := y*b.vp.W + x
	if z >= b.buf[i] {
		return false
	}
	b.buf[i] = z
	return true
}
