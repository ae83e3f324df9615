package mark

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/mknote"
	"k8s.io/klog/v2"
)

// ErrNoExif means the image carries no parseable EXIF block at all. The
// caller skips compositing and keeps the photo unwatermarked.
var ErrNoExif = errors.New("no exif data")

func init() {
	exif.RegisterParsers(mknote.All...)
}

// ExtractCameraInfo parses the EXIF block embedded in normalized image bytes.
// Missing make/model become "Unknown", missing numeric tags become empty
// strings, and a missing capture time falls back to the current clock.
func ExtractCameraInfo(data []byte) (*CameraInfo, error) {
	x, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		klog.V(1).Infof("exif decode: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrNoExif, err)
	}

	info := &CameraInfo{
		Brand: UnknownField,
		Model: UnknownField,
	}

	if s, err := stringField(x, exif.Make); err == nil && s != "" {
		info.Brand = s
	}
	if s, err := stringField(x, exif.Model); err == nil && s != "" {
		info.Model = s
	}

	if f, err := ratField(x, exif.FocalLength); err == nil {
		info.FocalLength = formatFocalLength(f)
	}
	if f, err := ratField(x, exif.FNumber); err == nil {
		info.Aperture = formatAperture(f)
	}
	if f, err := ratField(x, exif.ExposureTime); err == nil {
		info.ShutterSpeed = formatShutterSpeed(f)
	}

	if tag, err := x.Get(exif.ISOSpeedRatings); err == nil {
		if iso, err := tag.Int(0); err == nil {
			info.ISO = formatISO(iso)
		}
	}

	info.DateTime = captureTime(x)
	return info, nil
}

// captureTime returns DateTimeOriginal in RFC 3339, or the current time when
// the photo doesn't record one.
func captureTime(x *exif.Exif) string {
	if tag, err := x.Get(exif.DateTimeOriginal); err == nil {
		if s, err := tag.StringVal(); err == nil {
			if t, err := time.Parse(exifDate, s); err == nil {
				return t.Format(time.RFC3339)
			}
			klog.V(1).Infof("unparseable DateTimeOriginal: %q", s)
		}
	}
	return time.Now().Format(time.RFC3339)
}

func stringField(x *exif.Exif, name exif.FieldName) (string, error) {
	tag, err := x.Get(name)
	if err != nil {
		return "", err
	}
	s, err := tag.StringVal()
	if err != nil {
		return "", err
	}
	return trimNUL(s), nil
}

func ratField(x *exif.Exif, name exif.FieldName) (float64, error) {
	tag, err := x.Get(name)
	if err != nil {
		return 0, err
	}
	num, den, err := tag.Rat2(0)
	if err != nil {
		// Some writers store these as plain integers.
		if i, ierr := tag.Int(0); ierr == nil {
			return float64(i), nil
		}
		return 0, err
	}
	if den == 0 {
		return 0, fmt.Errorf("%s: zero denominator", name)
	}
	return float64(num) / float64(den), nil
}

// trimNUL drops the trailing NUL padding some firmwares leave in ASCII tags.
func trimNUL(s string) string {
	for len(s) > 0 && (s[len(s)-1] == 0 || s[len(s)-1] == ' ') {
		s = s[:len(s)-1]
	}
	return s
}
