// Package viewer is an interactive inspector for the occlusion diagnostic.
//
// It shows the translucent plane with a grey grid overlay and the test
// points, colored by the computed classification: red for occluded, green
// for visible. The occlusion test is re-run from the current camera every
// frame, so orbiting the view changes which points the plane hides.
//
// Controls: drag to orbit, wheel to zoom, R to regenerate the scene with the
// next seed.
package viewer

import (
	"image"
	"image/color"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"zprobe/internal/buildinfo"
	"zprobe/occlusion"
	"zprobe/scene"
	"zprobe/zgl"
)

var (
	colorBG       = color.RGBA{R: 0x0D, G: 0x0D, B: 0x14, A: 0xFF}
	colorPlane    = color.RGBA{R: 0x33, G: 0x99, B: 0xE6, A: 0x59}
	colorGrid     = color.RGBA{R: 0xCC, G: 0xCC, B: 0xCC, A: 0xFF}
	colorOccluded = color.RGBA{R: 0xFF, G: 0x33, B: 0x33, A: 0xFF}
	colorVisible  = color.RGBA{R: 0x33, G: 0xFF, B: 0x33, A: 0xFF}
)

// The grid overlay covers a reduced extent around the origin; the plane
// itself extends far beyond it.
const (
	gridExtent float32 = 20
	gridSteps          = 20

	pointSize = 7
)

// Run opens the inspector window for sc and blocks until it closes.
func Run(sc scene.Scene, seed int64) error {
	ren, err := zgl.NewRenderer(sc.Viewport)
	if err != nil {
		return err
	}
	g := &game{
		sc:        sc,
		seed:      seed,
		ren:       ren,
		azimuth:   45,
		elevation: 25,
		distance:  15,
		img:       image.NewRGBA(image.Rect(0, 0, sc.Viewport.W, sc.Viewport.H)),
	}
	ebiten.SetWindowTitle("zprobe (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(sc.Viewport.W, sc.Viewport.H)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type game struct {
	sc   scene.Scene
	seed int64

	ren     *zgl.Renderer
	results []occlusion.Result

	// orbital camera
	azimuth   float32 // degrees
	elevation float32 // degrees, clamped to ±89
	distance  float32

	dragging     bool
	lastX, lastY int

	img   *image.RGBA
	frame *ebiten.Image
}

func (g *game) Update() error {
	g.orbitInput()

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.seed++
		next := scene.Generate(g.seed, len(g.sc.Points))
		g.sc.Plane = next.Plane
		g.sc.Points = next.Points
	}

	cam := g.camera()
	g.ren.Clear()
	g.ren.Draw(nil, cam, g.sc.Plane.Mesh(color.RGBA{}))
	g.results = occlusion.Run(zgl.NewRenderedView(cam, g.ren.Depth()), g.sc.Points)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	vp := g.sc.Viewport
	if g.frame == nil {
		g.frame = ebiten.NewImage(vp.W, vp.H)
	}
	tgt := &rgbaTarget{img: g.img, w: vp.W, h: vp.H}
	tgt.fill(colorBG)

	cam := g.camera()
	g.ren.Clear()
	g.ren.Draw(tgt, cam, g.sc.Plane.Mesh(colorPlane))
	g.ren.DrawLines(tgt, cam, g.gridLines(), colorGrid)
	for _, r := range g.results {
		c := colorVisible
		if r.Occluded {
			c = colorOccluded
		}
		g.ren.DrawPoint(tgt, cam, r.Point.Pos, pointSize, c)
	}

	g.frame.WritePixels(g.img.Pix)
	screen.DrawImage(g.frame, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.sc.Viewport.W, g.sc.Viewport.H
}

func (g *game) orbitInput() {
	x, y := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if g.dragging {
			g.azimuth += float32(x-g.lastX) * 0.5
			g.elevation = clamp(g.elevation+float32(y-g.lastY)*0.5, -89, 89)
		}
		g.dragging = true
		g.lastX, g.lastY = x, y
	} else {
		g.dragging = false
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		if wy > 0 {
			g.distance *= 0.9
		} else {
			g.distance *= 1.1
		}
		g.distance = clamp(g.distance, 3, 50)
	}
}

// camera converts the spherical orbit state to an eye position, keeping the
// scene's target, field of view and clip planes.
func (g *game) camera() zgl.Camera {
	az := mgl32.DegToRad(g.azimuth)
	el := mgl32.DegToRad(g.elevation)
	c := g.sc.Camera
	c.Eye = mgl32.Vec3{
		g.distance * math32.Cos(el) * math32.Sin(az),
		g.distance * math32.Sin(el),
		g.distance * math32.Cos(el) * math32.Cos(az),
	}
	return c
}

func (g *game) gridLines() []mgl32.Vec3 {
	y := g.sc.Plane.Y
	step := gridExtent / gridSteps
	pts := make([]mgl32.Vec3, 0, (2*gridSteps+1)*4)
	for i := -gridSteps; i <= gridSteps; i++ {
		v := float32(i) * step
		pts = append(pts,
			mgl32.Vec3{v, y, -gridExtent}, mgl32.Vec3{v, y, gridExtent},
			mgl32.Vec3{-gridExtent, y, v}, mgl32.Vec3{gridExtent, y, v},
		)
	}
	return pts
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// rgbaTarget adapts an image.RGBA to zgl.Target, flipping to the image's
// top-left origin and alpha-blending translucent colors.
type rgbaTarget struct {
	img  *image.RGBA
	w, h int
}

func (t *rgbaTarget) Size() (int, int) { return t.w, t.h }

func (t *rgbaTarget) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= t.w || y >= t.h {
		return
	}
	y = t.h - 1 - y
	i := t.img.PixOffset(x, y)
	p := t.img.Pix[i : i+4 : i+4]
	if c.A == 0xFF {
		p[0], p[1], p[2], p[3] = c.R, c.G, c.B, 0xFF
		return
	}
	a := uint32(c.A)
	p[0] = uint8((uint32(c.R)*a + uint32(p[0])*(255-a)) / 255)
	p[1] = uint8((uint32(c.G)*a + uint32(p[1])*(255-a)) / 255)
	p[2] = uint8((uint32(c.B)*a + uint32(p[2])*(255-a)) / 255)
	p[3] = 0xFF
}

func (t *rgbaTarget) fill(c color.RGBA) {
	for i := 0; i+3 < len(t.img.Pix); i += 4 {
		t.img.Pix[i] = c.R
		t.img.Pix[i+1] = c.G
		t.img.Pix[i+2] = c.B
		t.img.Pix[i+3] = 0xFF
	}
}
