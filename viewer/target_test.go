package viewer

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTargetFlipsToBottomLeftOrigin(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	tgt := &rgbaTarget{img: img, w: 4, h: 4}

	tgt.SetPixel(0, 0, color.RGBA{R: 0xFF, A: 0xFF})
	assert.Equal(t, color.RGBA{R: 0xFF, A: 0xFF}, img.RGBAAt(0, 3))
}

func TestTargetIgnoresOutOfBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	tgt := &rgbaTarget{img: img, w: 4, h: 4}

	tgt.SetPixel(-1, 0, color.RGBA{A: 0xFF})
	tgt.SetPixel(0, 4, color.RGBA{A: 0xFF})
	assert.Equal(t, image.NewRGBA(image.Rect(0, 0, 4, 4)).Pix, img.Pix)
}

func TestTargetBlendsTranslucent(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	tgt := &rgbaTarget{img: img, w: 1, h: 1}

	tgt.SetPixel(0, 0, color.RGBA{R: 0xFF, A: 0xFF})
	tgt.SetPixel(0, 0, color.RGBA{B: 0xFF, A: 0x80})

	got := img.RGBAAt(0, 0)
	assert.InDelta(t, 127, int(got.R), 1)
	assert.InDelta(t, 128, int(got.B), 1)
	assert.EqualValues(t, 0xFF, got.A)
}
