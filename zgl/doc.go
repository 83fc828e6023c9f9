// Package zgl is a minimal, predictable software depth pipeline.
//
// It exists to answer one question deterministically: after rasterizing some
// geometry, what depth is stored at a given pixel, and how does a world-space
// point project onto that pixel? There is no shading, no texturing, and no GPU
// abstraction.
//
// Pipeline (fixed):
//
//	World → View → Projection → Near-plane clipping → Rasterization → DepthBuffer.
//
// Window coordinates follow the OpenGL convention throughout: x grows right,
// y grows up, (0, 0) is the bottom-left pixel, and normalized depth lies in
// [0, 1] with 0 at the near plane. Projection via Project and rasterization
// via Renderer agree on this mapping, so a depth value read back at a
// projected point's pixel is directly comparable to the point's own depth.
//
// All linear algebra is float32, via github.com/go-gl/mathgl/mgl32.
package zgl
