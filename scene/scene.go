// Package scene generates the synthetic test scene: one opaque horizontal
// plane at a pseudo-random height and a set of labeled pseudo-random points,
// each tagged with its geometric ground-truth occlusion. Generation is pure:
// the same seed always yields the same scene.
package scene

import (
	"fmt"
	"image/color"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"

	"zprobe/zgl"
)

// Fixed run configuration.
const (
	DefaultSeed   int64 = 42
	DefaultPoints       = 20

	// PlaneExtent is the plane's half-size in x and z.
	PlaneExtent float32 = 1000

	planeYMin, planeYMax float32 = -2, 2
	coordMin, coordMax   float32 = -5, 5

	// groundEps is the tolerance below the plane within which a point still
	// counts as on the surface, and therefore visible.
	groundEps float32 = 1e-4
)

// Plane is an opaque horizontal quad at height Y spanning ±Extent in x/z.
type Plane struct {
	Y      float32
	Extent float32
}

// Mesh returns the plane's two-triangle quad in color c.
func (p Plane) Mesh(c color.RGBA) zgl.Mesh {
	e := p.Extent
	return zgl.Mesh{
		Vertices: []mgl32.Vec3{
			{-e, p.Y, -e},
			{e, p.Y, -e},
			{e, p.Y, e},
			{-e, p.Y, e},
		},
		Indices: []uint16{0, 1, 2, 0, 2, 3},
		Color:   c,
	}
}

// Point is a labeled test point with its expected occlusion.
type Point struct {
	Label string
	Pos   mgl32.Vec3

	// Occluded is the geometric ground truth: the camera looks down from
	// above the plane, so the plane hides exactly the points lying below it.
	Occluded bool
}

// Scene is one generated test configuration, immutable after Generate.
type Scene struct {
	Plane    Plane
	Points   []Point
	Camera   zgl.Camera
	Viewport zgl.Viewport
}

// DefaultCamera returns the fixed run camera: eye above and in front of the
// origin, looking at it.
func DefaultCamera() zgl.Camera {
	return zgl.Camera{
		Eye:    mgl32.Vec3{0, 5, 10},
		Target: mgl32.Vec3{0, 0, 0},
		Up:     mgl32.Vec3{0, 1, 0},
		FOVY:   mgl32.DegToRad(45),
		Near:   0.1,
		Far:    100,
	}
}

// DefaultViewport returns the fixed run viewport.
func DefaultViewport() zgl.Viewport {
	return zgl.Viewport{W: 640, H: 480}
}

// Generate builds a deterministic scene from seed: the plane height is drawn
// first, then n points, so the draw order is part of the contract.
func Generate(seed int64, n int) Scene {
	rng := rand.New(rand.NewSource(seed))

	pl := Plane{Y: uniform(rng, planeYMin, planeYMax), Extent: PlaneExtent}

	pts := make([]Point, n)
	for i := range pts {
		pos := mgl32.Vec3{
			uniform(rng, coordMin, coordMax),
			uniform(rng, coordMin, coordMax),
			uniform(rng, coordMin, coordMax),
		}
		pts[i] = Point{
			Label:    fmt.Sprintf("P%02d", i+1),
			Pos:      pos,
			Occluded: Expected(pl, pos),
		}
	}

	return Scene{
		Plane:    pl,
		Points:   pts,
		Camera:   DefaultCamera(),
		Viewport: DefaultViewport(),
	}
}

// Expected reports the geometric ground-truth occlusion of pos behind pl for
// the fixed downward-looking camera: occluded iff pos lies below the plane by
// more than a negligible tolerance.
func Expected(pl Plane, pos mgl32.Vec3) bool {
	return pos.Y() < pl.Y-groundEps
}

func uniform(rng *rand.Rand, lo, hi float32) float32 {
	return lo + rng.Float32()*(hi-lo)
}
