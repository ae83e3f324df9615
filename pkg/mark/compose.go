package mark

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/anthonynsimon/bild/transform"
	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	bandColor = color.RGBA{0xff, 0xff, 0xff, 0xff}
	textColor = color.RGBA{0x26, 0x26, 0x26, 0xff}
	dateColor = color.RGBA{0x66, 0x66, 0x66, 0xff}
)

var (
	modelFont = parseFont(gobold.TTF)
	dateFont  = parseFont(goregular.TTF)
	infoFont  = parseFont(gomono.TTF)
)

func parseFont(ttf []byte) *truetype.Font {
	f, err := freetype.ParseFont(ttf)
	if err != nil {
		panic(fmt.Sprintf("bundled font: %v", err))
	}
	return f
}

// Compose renders the photo with its caption band onto a fresh canvas.
// Draw order is fixed: photo, white band, model text, date text, exposure
// info, brand mark. The same inputs always produce identical pixels.
func Compose(src image.Image, l Layout, info CameraInfo, mark Mark) (*image.RGBA, error) {
	canvas := image.NewRGBA(image.Rect(0, 0, l.CanvasWidth(), l.CanvasHeight()))

	draw.Draw(canvas, image.Rect(0, 0, l.ImageWidth, l.ImageHeight), src, src.Bounds().Min, draw.Src)

	band := image.Rect(0, l.ImageHeight, l.CanvasWidth(), l.CanvasHeight())
	draw.Draw(canvas, band, image.NewUniform(bandColor), image.Point{}, draw.Src)

	if err := drawString(canvas, modelFont, float64(l.ModelFontSize), textColor, info.Model, l.Padding, l.ModelBaseline); err != nil {
		return nil, fmt.Errorf("draw model: %w", err)
	}

	if err := drawString(canvas, dateFont, float64(l.DateFontSize), dateColor, info.CaptionDate(), l.Padding, l.DateBaseline); err != nil {
		return nil, fmt.Errorf("draw date: %w", err)
	}

	line := info.InfoLine()
	infoX := float64(l.CanvasWidth()) - l.Padding - measure(infoFont, float64(l.InfoFontSize), line)
	if err := drawString(canvas, infoFont, float64(l.InfoFontSize), textColor, line, infoX, l.InfoBaseline); err != nil {
		return nil, fmt.Errorf("draw info: %w", err)
	}

	if err := drawMark(canvas, l, mark); err != nil {
		return nil, fmt.Errorf("draw mark: %w", err)
	}

	return canvas, nil
}

func drawMark(canvas *image.RGBA, l Layout, mark Mark) error {
	switch mark.Kind {
	case MarkNone:
		return nil

	case MarkGlyph:
		// The bundled fonts carry no emoji coverage, so a glyph they can't
		// render falls back to the brand wordmark.
		s, f := mark.Char, dateFont
		if !covers(f, s) {
			s, f = mark.Text, modelFont
		}
		x := float64(l.CanvasWidth())/2 - measure(f, l.GlyphFontSize, s)/2
		return drawString(canvas, f, l.GlyphFontSize, textColor, s, x, l.GlyphBaseline)

	case MarkImage:
		b := mark.Asset.Bounds()
		if b.Dy() == 0 {
			return fmt.Errorf("logo has no height")
		}
		lh := l.LogoHeight
		lw := float64(b.Dx()) / float64(b.Dy()) * lh
		logo := transform.Resize(mark.Asset, int(lw), int(lh), transform.Lanczos)

		x := l.CanvasWidth()/2 - logo.Bounds().Dx()/2
		y := int(l.LogoTop)
		r := image.Rect(x, y, x+logo.Bounds().Dx(), y+logo.Bounds().Dy())
		draw.Draw(canvas, r, logo, logo.Bounds().Min, draw.Over)
		return nil
	}

	return fmt.Errorf("unknown mark kind %d", mark.Kind)
}

func drawString(dst *image.RGBA, f *truetype.Font, size float64, col color.Color, s string, x, y float64) error {
	if s == "" {
		return nil
	}

	c := freetype.NewContext()
	c.SetDPI(72)
	c.SetFont(f)
	c.SetFontSize(size)
	c.SetClip(dst.Bounds())
	c.SetDst(dst)
	c.SetSrc(image.NewUniform(col))
	c.SetHinting(font.HintingFull)

	_, err := c.DrawString(s, freetype.Pt(int(x), int(y)))
	return err
}

// covers reports whether f has a glyph for every rune of s.
func covers(f *truetype.Font, s string) bool {
	for _, r := range s {
		if f.Index(r) == 0 {
			return false
		}
	}
	return s != ""
}

// measure returns the rendered width of s in pixels at the given size.
func measure(f *truetype.Font, size float64, s string) float64 {
	face := truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()
	return float64(font.MeasureString(face, s) >> 6)
}
