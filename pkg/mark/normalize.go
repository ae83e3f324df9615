package mark

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"strings"
	"time"

	"github.com/anthonynsimon/bild/imgio"
	"k8s.io/klog/v2"
)

// ErrHEICTranscode means a HEIC/HEIF photo could not be converted to JPEG.
// The raw container bytes are never passed downstream.
var ErrHEICTranscode = errors.New("heic conversion failed")

// transcodeQuality is the JPEG quality used when converting HEIC input,
// equivalent to the 0.9 canvas quality of the original tool.
const transcodeQuality = 90

// File is one uploaded photo moving through the pipeline.
type File struct {
	Name      string
	MediaType string
	ModTime   time.Time
	Data      []byte
}

// Normalize converts HEIC/HEIF input into a JPEG the rest of the pipeline
// can decode. Anything else passes through byte-identical. The returned
// File keeps the original ModTime; a transcoded file is renamed to .jpg.
func Normalize(f File) (File, error) {
	if !IsHEIC(f) {
		return f, nil
	}

	klog.V(1).Infof("transcoding %s (%d bytes) to jpeg", f.Name, len(f.Data))
	img, _, err := image.Decode(bytes.NewReader(f.Data))
	if err != nil {
		return File{}, fmt.Errorf("%w: decode %s: %v", ErrHEICTranscode, f.Name, err)
	}

	var buf bytes.Buffer
	if err := imgio.JPEGEncoder(transcodeQuality)(&buf, img); err != nil {
		return File{}, fmt.Errorf("%w: encode %s: %v", ErrHEICTranscode, f.Name, err)
	}

	ext := filepath.Ext(f.Name)
	return File{
		Name:      strings.TrimSuffix(f.Name, ext) + ".jpg",
		MediaType: "image/jpeg",
		ModTime:   f.ModTime,
		Data:      buf.Bytes(),
	}, nil
}

// IsHEIC reports whether the file looks like a HEIC/HEIF container, by
// declared media type, filename extension, or ftyp sniff of the leading
// bytes.
func IsHEIC(f File) bool {
	switch strings.ToLower(f.MediaType) {
	case "image/heic", "image/heif", "image/heic-sequence", "image/heif-sequence":
		return true
	}

	switch strings.ToLower(filepath.Ext(f.Name)) {
	case ".heic", ".heif":
		return true
	}

	return sniffHEIC(f.Data)
}

// heicBrands are the ISOBMFF ftyp major brands used by HEIC/HEIF stills.
var heicBrands = []string{"heic", "heix", "heim", "heis", "hevc", "hevx", "mif1", "msf1"}

// sniffHEIC checks for an ISOBMFF ftyp box with a HEIF brand.
func sniffHEIC(data []byte) bool {
	if len(data) < 12 || string(data[4:8]) != "ftyp" {
		return false
	}
	brand := string(data[8:12])
	for _, b := range heicBrands {
		if brand == b {
			return true
		}
	}
	return false
}
