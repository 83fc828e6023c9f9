package zgl

import (
	"fmt"
	"image/color"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Renderer rasterizes triangle meshes into a depth buffer, with an optional
// flat-colored pass for interactive display.
//
// Create it once per viewport and reuse it.
type Renderer struct {
	vp    Viewport
	depth *DepthBuffer
}

// NewRenderer creates a renderer and its depth buffer for a viewport.
func NewRenderer(vp Viewport) (*Renderer, error) {
	if vp.W <= 0 || vp.H <= 0 {
		return nil, fmt.Errorf("zgl: invalid viewport %dx%d", vp.W, vp.H)
	}
	return &Renderer{vp: vp, depth: NewDepthBuffer(vp)}, nil
}

// Viewport returns the renderer's pixel extent.
func (r *Renderer) Viewport() Viewport { return r.vp }

// Depth exposes the depth buffer populated by previous Draw calls.
func (r *Renderer) Depth() *DepthBuffer { return r.depth }

// Clear resets the depth buffer to the far value.
func (r *Renderer) Clear() { r.depth.Clear() }

// Draw rasterizes a mesh, depth-testing and depth-writing each covered pixel.
// A nil target gives a depth-only pass.
func (r *Renderer) Draw(t Target, cam Camera, m Mesh) {
	if len(m.Vertices) == 0 || len(m.Indices) < 3 {
		return
	}
	mvp := cam.Projection(r.vp.Aspect()).Mul4(cam.View())

	for i := 0; i+2 < len(m.Indices); i += 3 {
		i0, i1, i2 := int(m.Indices[i]), int(m.Indices[i+1]), int(m.Indices[i+2])
		if i0 >= len(m.Vertices) || i1 >= len(m.Vertices) || i2 >= len(m.Vertices) {
			continue
		}
		r.drawTriangle(t, m.Color,
			mvp.Mul4x1(m.Vertices[i0].Vec4(1)),
			mvp.Mul4x1(m.Vertices[i1].Vec4(1)),
			mvp.Mul4x1(m.Vertices[i2].Vec4(1)))
	}
}

// DrawLines draws world-space segments (pairs in pts) as single-pixel lines
// into t, ignoring the depth buffer. Intended for overlay geometry.
func (r *Renderer) DrawLines(t Target, cam Camera, pts []mgl32.Vec3, c color.RGBA) {
	if t == nil {
		return
	}
	mvp := cam.Projection(r.vp.Aspect()).Mul4(cam.View())
	for i := 0; i+1 < len(pts); i += 2 {
		a := mvp.Mul4x1(pts[i].Vec4(1))
		b := mvp.Mul4x1(pts[i+1].Vec4(1))
		a, b, ok := clipSegmentNear(a, b)
		if !ok {
			continue
		}
		va, vb, ok := clipLineViewport(toWindow(a, r.vp), toWindow(b, r.vp), r.vp)
		if !ok {
			continue
		}
		drawLine(t, int(va.x+0.5), int(va.y+0.5), int(vb.x+0.5), int(vb.y+0.5), c)
	}
}

// clipLineViewport clips a window-space segment to the viewport rectangle
// (Liang-Barsky), so line drawing never walks far outside the target.
func clipLineViewport(a, b winVert, vp Viewport) (winVert, winVert, bool) {
	t0, t1 := float32(0), float32(1)
	dx := b.x - a.x
	dy := b.y - a.y
	clip := func(p, q float32) bool {
		if p == 0 {
			return q >= 0
		}
		s := q / p
		if p < 0 {
			if s > t1 {
				return false
			}
			if s > t0 {
				t0 = s
			}
		} else {
			if s < t0 {
				return false
			}
			if s < t1 {
				t1 = s
			}
		}
		return true
	}
	if !clip(-dx, a.x) || !clip(dx, float32(vp.W-1)-a.x) ||
		!clip(-dy, a.y) || !clip(dy, float32(vp.H-1)-a.y) {
		return a, b, false
	}
	na := winVert{x: a.x + t0*dx, y: a.y + t0*dy}
	nb := winVert{x: a.x + t1*dx, y: a.y + t1*dy}
	return na, nb, true
}

// DrawPoint draws a world-space point as a size×size square into t, ignoring
// the depth buffer. Points behind the eye or outside the depth range are
// skipped.
func (r *Renderer) DrawPoint(t Target, cam Camera, p mgl32.Vec3, size int, c color.RGBA) {
	if t == nil {
		return
	}
	pp, ok := Project(p, cam.View(), cam.Projection(r.vp.Aspect()), r.vp)
	if !ok {
		return
	}
	for dy := -size / 2; dy <= size/2; dy++ {
		for dx := -size / 2; dx <= size/2; dx++ {
			t.SetPixel(pp.PX+dx, pp.PY+dy, c)
		}
	}
}

type winVert struct {
	x, y float32
	z    float32 // normalized depth in [0, 1]
}

func toWindow(c mgl32.Vec4, vp Viewport) winVert {
	inv := 1 / c.W()
	return winVert{
		x: (c.X()*inv + 1) / 2 * float32(vp.W),
		y: (c.Y()*inv + 1) / 2 * float32(vp.H),
		z: (c.Z()*inv + 1) / 2,
	}
}

// drawTriangle clips one clip-space triangle against the near plane, then
// rasterizes the resulting fan.
func (r *Renderer) drawTriangle(t Target, c color.RGBA, p0, p1, p2 mgl32.Vec4) {
	poly := clipNear([3]mgl32.Vec4{p0, p1, p2})
	for i := 1; i+1 < len(poly); i++ {
		r.rasterTriangle(t, c,
			toWindow(poly[0], r.vp),
			toWindow(poly[i], r.vp),
			toWindow(poly[i+1], r.vp))
	}
}

const clipEps = 1e-6

// clipNear clips a triangle against the near plane (z + w > 0) in clip space,
// returning 0, 3 or 4 vertices. Vertices on the far side of the plane are
// replaced by the edge intersections, Sutherland-Hodgman style.
func clipNear(tri [3]mgl32.Vec4) []mgl32.Vec4 {
	out := make([]mgl32.Vec4, 0, 4)
	for i := 0; i < 3; i++ {
		a, b := tri[i], tri[(i+1)%3]
		da := a.Z() + a.W()
		db := b.Z() + b.W()
		if da > clipEps {
			out = append(out, a)
		}
		if (da > clipEps) != (db > clipEps) {
			s := da / (da - db)
			out = append(out, a.Add(b.Sub(a).Mul(s)))
		}
	}
	return out
}

// clipSegmentNear clips a clip-space segment against the near plane.
func clipSegmentNear(a, b mgl32.Vec4) (mgl32.Vec4, mgl32.Vec4, bool) {
	da := a.Z() + a.W()
	db := b.Z() + b.W()
	if da <= clipEps && db <= clipEps {
		return a, b, false
	}
	if da <= clipEps {
		a = a.Add(b.Sub(a).Mul(da / (da - db)))
	} else if db <= clipEps {
		b = b.Add(a.Sub(b).Mul(db / (db - da)))
	}
	return a, b, true
}

func edgeF(ax, ay, bx, by, px, py float32) float32 {
	return (px-ax)*(by-ay) - (py-ay)*(bx-ax)
}

// rasterTriangle fills one window-space triangle, sampling at pixel centers.
// Depth is interpolated barycentrically; NDC depth is affine in window
// coordinates for a planar triangle, so this is exact. Fragments beyond the
// far plane are discarded.
func (r *Renderer) rasterTriangle(t Target, c color.RGBA, v0, v1, v2 winVert) {
	area := edgeF(v0.x, v0.y, v1.x, v1.y, v2.x, v2.y)
	if area == 0 {
		return
	}
	if area < 0 {
		v1, v2 = v2, v1
		area = -area
	}
	invArea := 1 / area

	minX := maxInt(int(math32.Floor(min3(v0.x, v1.x, v2.x))), 0)
	minY := maxInt(int(math32.Floor(min3(v0.y, v1.y, v2.y))), 0)
	maxX := minInt(int(math32.Ceil(max3(v0.x, v1.x, v2.x))), r.vp.W-1)
	maxY := minInt(int(math32.Ceil(max3(v0.y, v1.y, v2.y))), r.vp.H-1)
	if minX > maxX || minY > maxY {
		return
	}

	for y := minY; y <= maxY; y++ {
		py := float32(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float32(x) + 0.5
			w0 := edgeF(v1.x, v1.y, v2.x, v2.y, px, py)
			w1 := edgeF(v2.x, v2.y, v0.x, v0.y, px, py)
			w2 := edgeF(v0.x, v0.y, v1.x, v1.y, px, py)
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			z := (w0*v0.z + w1*v1.z + w2*v2.z) * invArea
			if z > 1 {
				continue
			}
			if z < 0 {
				z = 0
			}
			if !r.depth.test(x, y, z) {
				continue
			}
			if t != nil {
				t.SetPixel(x, y, c)
			}
		}
	}
}

// drawLine is a Bresenham line; the target clips out-of-bounds pixels.
func drawLine(t Target, x0, y0, x1, y1 int, c color.RGBA) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		t.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min3(a, b, c float32) float32 {
	if a > b {
		a = b
	}
	if a > c {
		a = c
	}
	return a
}

func max3(a, b, c float32) float32 {
	if a < b {
		a = b
	}
	if a < c {
		a = c
	}
	return a
}
