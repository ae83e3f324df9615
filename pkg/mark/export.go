package mark

import (
	"bytes"
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/imgio"
)

// ExportName is the fixed download filename for a composited photo.
const ExportName = "watermarked-image.jpg"

// ExportQuality matches the 0.9 JPEG quality of the original tool.
const ExportQuality = 90

// EncodeJPEG serializes a composited canvas for download.
func EncodeJPEG(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := imgio.JPEGEncoder(quality)(&buf, img); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
