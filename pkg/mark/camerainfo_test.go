package mark

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatShutterSpeed(t *testing.T) {
	cases := []struct {
		seconds float64
		want    string
	}{
		{0.004, "1/250"},
		{1.0 / 8000, "1/8000"},
		{0.5, "1/2"},
		{0.3, "1/3"},
		{0, ""},
		{-1, ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, formatShutterSpeed(tc.seconds), "seconds=%v", tc.seconds)
	}
}

func TestFormatFields(t *testing.T) {
	assert.Equal(t, "24mm", formatFocalLength(24))
	assert.Equal(t, "1.5mm", formatFocalLength(1.5))
	assert.Equal(t, "", formatFocalLength(0))

	assert.Equal(t, "f/1.78", formatAperture(1.78))
	assert.Equal(t, "f/8", formatAperture(8))
	assert.Equal(t, "", formatAperture(0))

	assert.Equal(t, "ISO100", formatISO(100))
	assert.Equal(t, "", formatISO(0))
}

func TestInfoLineJoinsEmptyFields(t *testing.T) {
	full := CameraInfo{FocalLength: "24mm", Aperture: "f/1.78", ShutterSpeed: "1/250", ISO: "ISO100"}
	assert.Equal(t, "24mm f/1.78 1/250 ISO100", full.InfoLine())

	// Empty fields keep their separators, matching the historical output.
	gaps := CameraInfo{FocalLength: "24mm", ISO: "ISO100"}
	assert.Equal(t, "24mm   ISO100", gaps.InfoLine())

	assert.Equal(t, "   ", CameraInfo{}.InfoLine())
}

func TestCaptionDate(t *testing.T) {
	assert.Equal(t, "2024/06/01 10:30", CameraInfo{DateTime: "2024-06-01T10:30:00Z"}.CaptionDate())
	assert.Equal(t, "2024/06/01 10:30", CameraInfo{DateTime: "2024:06:01 10:30:00"}.CaptionDate())
	assert.Equal(t, "not a date", CameraInfo{DateTime: "not a date"}.CaptionDate())
}
