package mark

import "math"

// Caption band proportions. These are fixed design constants; output from
// two builds of the same photo must line up pixel for pixel.
const (
	bandHeightFrac = 0.08
	bandMinHeight  = 60.0

	paddingFrac   = 0.25
	modelFontFrac = 0.32
	dateFontFrac  = 0.22
	infoFontFrac  = 0.25

	modelAnchorFrac = 0.40
	dateAnchorFrac  = 0.75
	infoAnchorFrac  = 0.58

	logoTopFrac     = 0.28
	logoHeightFrac  = 0.45
	glyphFontFrac   = 0.40
	glyphAnchorFrac = 0.60
)

// Layout is the caption band geometry for one photo, derived from the
// photo's own pixel dimensions.
type Layout struct {
	ImageWidth  int
	ImageHeight int

	BandHeight float64
	Padding    float64

	ModelFontSize int
	DateFontSize  int
	InfoFontSize  int

	// Baselines are absolute Y coordinates on the output canvas.
	ModelBaseline float64
	DateBaseline  float64
	InfoBaseline  float64

	LogoTop       float64
	LogoHeight    float64
	GlyphFontSize float64
	GlyphBaseline float64
}

// FitLayout computes the band geometry for a photo of the given dimensions.
func FitLayout(width, height int) Layout {
	h := math.Max(float64(height)*bandHeightFrac, bandMinHeight)
	top := float64(height)

	return Layout{
		ImageWidth:  width,
		ImageHeight: height,

		BandHeight: h,
		Padding:    h * paddingFrac,

		ModelFontSize: int(math.Floor(h * modelFontFrac)),
		DateFontSize:  int(math.Floor(h * dateFontFrac)),
		InfoFontSize:  int(math.Floor(h * infoFontFrac)),

		ModelBaseline: top + h*modelAnchorFrac,
		DateBaseline:  top + h*dateAnchorFrac,
		InfoBaseline:  top + h*infoAnchorFrac,

		LogoTop:       top + h*logoTopFrac,
		LogoHeight:    h * logoHeightFrac,
		GlyphFontSize: h * glyphFontFrac,
		GlyphBaseline: top + h*glyphAnchorFrac,
	}
}

// CanvasWidth is the output surface width.
func (l Layout) CanvasWidth() int {
	return l.ImageWidth
}

// CanvasHeight is the output surface height: the photo plus the band.
func (l Layout) CanvasHeight() int {
	return l.ImageHeight + int(l.BandHeight)
}
