package zgl

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// Mesh is a flat-colored triangle list.
type Mesh struct {
	Vertices []mgl32.Vec3
	Indices  []uint16 // triangle list
	Color    color.RGBA
}

// Target is a minimal pixel target for the color pass.
//
// SetPixel receives window coordinates (row 0 at the bottom) and may be
// called with a translucent color; implementations decide whether to blend.
// Out-of-bounds coordinates must be ignored.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c color.RGBA)
}
