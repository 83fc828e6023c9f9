package zgl

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera describes the viewing transform for a render pass.
type Camera struct {
	Eye    mgl32.Vec3
	Target mgl32.Vec3
	Up     mgl32.Vec3

	FOVY float32 // vertical field of view, radians
	Near float32
	Far  float32
}

// View returns the camera view matrix.
func (c Camera) View() mgl32.Mat4 {
	up := c.Up
	if up == (mgl32.Vec3{}) {
		up = mgl32.Vec3{0, 1, 0}
	}
	return mgl32.LookAtV(c.Eye, c.Target, up)
}

// Projection returns the perspective projection for a viewport aspect.
func (c Camera) Projection(aspect float32) mgl32.Mat4 {
	if aspect == 0 {
		aspect = 1
	}
	fov := c.FOVY
	if fov == 0 {
		fov = mgl32.DegToRad(45)
	}
	return mgl32.Perspective(fov, aspect, c.Near, c.Far)
}

// Viewport is the pixel extent of a render target.
type Viewport struct {
	W, H int
}

// Aspect returns the width/height ratio, or 1 for a degenerate viewport.
func (v Viewport) Aspect() float32 {
	if v.H == 0 {
		return 1
	}
	return float32(v.W) / float32(v.H)
}

// Contains reports whether pixel (x, y) lies inside the viewport.
func (v Viewport) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < v.W && y < v.H
}
