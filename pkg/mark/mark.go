// Package mark composites a camera-metadata caption band onto a photo:
// normalize the container format, extract EXIF, lay out a band proportional
// to the photo, rasterize text and brand mark, and re-encode for download.
// Each run is single-shot and stateless; nothing is shared between photos.
package mark

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"k8s.io/klog/v2"
)

// ErrUnsupportedImage means the photo could not be decoded at all. The CLI
// reports it with a generic "use a JPG or PNG" message.
var ErrUnsupportedImage = errors.New("unsupported image")

// Options adjust a single pipeline run. The zero value is automatic mode.
type Options struct {
	// Brand and Model override the extracted fields (manual mode). They
	// apply only when the photo produced a CameraInfo.
	Brand string
	Model string

	// Quality overrides the export JPEG quality; 0 means ExportQuality.
	Quality int
}

// Result is the outcome of one pipeline run.
type Result struct {
	// File is the normalized input (post HEIC transcoding).
	File File

	// Info is nil when the photo carries no EXIF block; the photo is then
	// left unwatermarked and Output holds the normalized bytes unchanged.
	Info *CameraInfo

	Layout      Layout
	Watermarked bool

	// Output is the downloadable bytes: a composited JPEG when Watermarked,
	// otherwise the normalized photo in its original encoding.
	Output []byte
}

// Run pushes one photo through the whole pipeline. Recoverable metadata
// gaps degrade (empty caption fields, missing logo); transcoding failures
// and undecodable photos abort.
func Run(f File, opts Options) (*Result, error) {
	nf, err := Normalize(f)
	if err != nil {
		return nil, err
	}

	img, kind, err := image.Decode(bytes.NewReader(nf.Data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}
	klog.V(1).Infof("decoded %s: %s %v", nf.Name, kind, img.Bounds().Size())

	info, err := ExtractCameraInfo(nf.Data)
	if err != nil {
		if !errors.Is(err, ErrNoExif) {
			return nil, fmt.Errorf("extract metadata: %w", err)
		}
		klog.V(1).Infof("%s has no exif block, skipping caption", nf.Name)
		return &Result{File: nf, Output: nf.Data}, nil
	}

	if opts.Brand != "" {
		info.Brand = opts.Brand
	}
	if opts.Model != "" {
		info.Model = opts.Model
	}

	b := img.Bounds()
	layout := FitLayout(b.Dx(), b.Dy())

	canvas, err := Compose(img, layout, *info, ResolveBrand(info.Brand))
	if err != nil {
		return nil, fmt.Errorf("compose: %w", err)
	}

	quality := opts.Quality
	if quality == 0 {
		quality = ExportQuality
	}

	out, err := EncodeJPEG(canvas, quality)
	if err != nil {
		return nil, err
	}

	return &Result{
		File:        nf,
		Info:        info,
		Layout:      layout,
		Watermarked: true,
		Output:      out,
	}, nil
}
