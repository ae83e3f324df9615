package mark

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// UnknownField is printed for a camera make or model the photo doesn't carry.
const UnknownField = "Unknown"

// exifDate is the timestamp layout used inside EXIF blocks.
var exifDate = "2006:01:02 15:04:05"

// captionDate is the layout the caption band prints timestamps with.
var captionDate = "2006/01/02 15:04"

// CameraInfo is the extracted (and user-editable) metadata for one photo.
// Numeric fields are pre-formatted for the caption band; a field the photo
// doesn't carry is the empty string, never an error.
type CameraInfo struct {
	Brand        string
	Model        string
	FocalLength  string
	Aperture     string
	ShutterSpeed string
	ISO          string
	DateTime     string
}

// InfoLine is the right-aligned exposure summary. Fields are joined with
// single spaces even when some are empty, matching the historical output
// byte-for-byte.
func (c CameraInfo) InfoLine() string {
	return c.FocalLength + " " + c.Aperture + " " + c.ShutterSpeed + " " + c.ISO
}

// CaptionDate renders DateTime for the caption band. Unparseable values are
// printed as-is rather than dropped.
func (c CameraInfo) CaptionDate() string {
	for _, layout := range []string{time.RFC3339, exifDate} {
		if t, err := time.Parse(layout, c.DateTime); err == nil {
			return t.Format(captionDate)
		}
	}
	return c.DateTime
}

// formatFocalLength renders a focal length in millimeters, e.g. "24mm".
func formatFocalLength(mm float64) string {
	if mm <= 0 {
		return ""
	}
	return formatFloat(mm) + "mm"
}

// formatAperture renders an f-number, e.g. "f/1.78".
func formatAperture(f float64) string {
	if f <= 0 {
		return ""
	}
	return "f/" + formatFloat(f)
}

// formatShutterSpeed renders an exposure time as a reciprocal fraction,
// e.g. 0.004s -> "1/250". Zero and negative exposures yield "".
func formatShutterSpeed(seconds float64) string {
	if seconds <= 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return ""
	}
	return "1/" + strconv.FormatInt(int64(math.Round(1/seconds)), 10)
}

// formatISO renders a sensitivity rating, e.g. "ISO100".
func formatISO(iso int) string {
	if iso <= 0 {
		return ""
	}
	return "ISO" + strconv.Itoa(iso)
}

// formatFloat prints a float the way the caption expects: no exponent, no
// trailing zeros.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}
