package mark

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"sort"
)

//go:embed assets/logos/*.png
var logoFS embed.FS

// MarkKind distinguishes the two visual-mark renderings.
type MarkKind int

const (
	// MarkNone means the brand has no mark; the logo region stays blank.
	MarkNone MarkKind = iota
	// MarkImage is a bundled logo image centered in the band.
	MarkImage
	// MarkGlyph is a single text glyph centered in the band.
	MarkGlyph
)

// Mark is the visual mark drawn for a recognized camera brand.
type Mark struct {
	Kind  MarkKind
	Asset image.Image
	Char  string

	// Text is the wordmark drawn when the bundled fonts can't render Char.
	Text string
}

// BrandStyle tags a brand's visual identity. Carried for future styling;
// the current layout does not branch on it.
type BrandStyle string

const (
	StyleModern  BrandStyle = "modern"
	StyleClassic BrandStyle = "classic"
	StylePremium BrandStyle = "premium"
)

// BrandEntry maps a camera make to its mark and style.
type BrandEntry struct {
	Mark  Mark
	Style BrandStyle
}

var brandTable = map[string]BrandEntry{
	"Apple":             {Mark: logoMark("apple.png"), Style: StyleModern},
	"NIKON CORPORATION": {Mark: logoMark("nikon.png"), Style: StyleModern},
	"Canon":             {Mark: logoMark("canon.png"), Style: StyleClassic},
	"HUAWEI":            {Mark: glyphMark("📱", "HUAWEI"), Style: StyleModern},
	"Xiaomi":            {Mark: glyphMark("📱", "Xiaomi"), Style: StyleModern},
	"DJI":               {Mark: glyphMark("🚁", "DJI"), Style: StyleModern},
	"SONY":              {Mark: logoMark("sony.png"), Style: StyleClassic},
	"FUJIFILM":          {Mark: glyphMark("📸", "FUJIFILM"), Style: StyleClassic},
	"Leica":             {Mark: glyphMark("📸", "Leica"), Style: StylePremium},
	"Hasselblad":        {Mark: logoMark("hasselblad.png"), Style: StylePremium},
}

// ResolveBrand looks up the mark for a camera make. The match is exact and
// case-sensitive; unrecognized brands get no mark, never an error.
func ResolveBrand(brand string) Mark {
	if e, ok := brandTable[brand]; ok {
		return e.Mark
	}
	return Mark{Kind: MarkNone}
}

// Brands lists the selectable brand names for manual mode, sorted.
func Brands() []string {
	names := make([]string, 0, len(brandTable))
	for n := range brandTable {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func logoMark(name string) Mark {
	bs, err := logoFS.ReadFile("assets/logos/" + name)
	if err != nil {
		panic(fmt.Sprintf("missing bundled logo %s: %v", name, err))
	}
	img, _, err := image.Decode(bytes.NewReader(bs))
	if err != nil {
		panic(fmt.Sprintf("bad bundled logo %s: %v", name, err))
	}
	return Mark{Kind: MarkImage, Asset: img}
}

func glyphMark(char, text string) Mark {
	return Mark{Kind: MarkGlyph, Char: char, Text: text}
}
