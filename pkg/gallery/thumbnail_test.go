package gallery

import (
	"image"
	"image/color"
	"image/draw"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{0x40, 0x80, 0xc0, 0xff}), image.Point{}, draw.Src)
	return img
}

func TestCreateThumbScalesByX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thumb.jpg")

	tm, err := createThumb(testImage(100, 50), path, ThumbOpts{X: 50, Quality: 85})
	require.NoError(t, err)
	assert.Equal(t, 50, tm.X)
	assert.Equal(t, 25, tm.Y)

	// the saved file round-trips with the same dimensions
	rt, err := readThumb(path)
	require.NoError(t, err)
	assert.Equal(t, 50, rt.X)
	assert.Equal(t, 25, rt.Y)
}

func TestCreateThumbScalesByY(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thumb.jpg")

	tm, err := createThumb(testImage(400, 200), path, ThumbOpts{Y: 100, Quality: 85})
	require.NoError(t, err)
	assert.Equal(t, 200, tm.X)
	assert.Equal(t, 100, tm.Y)
}

func TestThumbRelPath(t *testing.T) {
	p := Photo{
		RelPath: "alps/ridge.jpg",
		ModTime: time.Date(2024, 6, 1, 10, 30, 45, 0, time.UTC),
	}

	assert.Equal(t, "alps/_/ridge_y640_103045.jpg", thumbRelPath(p, ThumbOpts{Y: 640}))
	assert.Equal(t, "alps/_/ridge_x2048_103045.jpg", thumbRelPath(p, ThumbOpts{X: 2048}))
}

func TestThumbRelPathUnsafeChars(t *testing.T) {
	p := Photo{
		RelPath: "street/My Pic.jpeg",
		ModTime: time.Date(2024, 6, 1, 10, 30, 45, 0, time.UTC),
	}

	assert.Equal(t, "street/_/My_Pic_y640_103045.jpg", thumbRelPath(p, ThumbOpts{Y: 640}))
}
