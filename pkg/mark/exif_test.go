package mark

import (
	"bytes"
	"encoding/binary"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TIFF field types
const (
	ttASCII    = 2
	ttShort    = 3
	ttLong     = 4
	ttRational = 5
)

// EXIF tag ids
const (
	tagMake             = 0x010F
	tagModel            = 0x0110
	tagExifIFDPointer   = 0x8769
	tagExposureTime     = 0x829A
	tagFNumber          = 0x829D
	tagISOSpeedRatings  = 0x8827
	tagDateTimeOriginal = 0x9003
	tagFocalLength      = 0x920A
)

type ifdEntry struct {
	tag   uint16
	typ   uint16
	count uint32
	value []byte
}

func le16(v uint16) []byte {
	bs := make([]byte, 2)
	binary.LittleEndian.PutUint16(bs, v)
	return bs
}

func le32(v uint32) []byte {
	bs := make([]byte, 4)
	binary.LittleEndian.PutUint32(bs, v)
	return bs
}

func leRat(num, den uint32) []byte {
	return append(le32(num), le32(den)...)
}

func asciiVal(s string) []byte {
	return append([]byte(s), 0)
}

// encodeIFD lays out one IFD at absolute offset start: the directory,
// then the out-of-line values. Entries must be pre-sorted by tag.
func encodeIFD(entries []ifdEntry, start uint32) []byte {
	var dir, data bytes.Buffer
	dataOff := start + uint32(2+len(entries)*12+4)

	binary.Write(&dir, binary.LittleEndian, uint16(len(entries)))
	for _, e := range entries {
		binary.Write(&dir, binary.LittleEndian, e.tag)
		binary.Write(&dir, binary.LittleEndian, e.typ)
		binary.Write(&dir, binary.LittleEndian, e.count)
		if len(e.value) <= 4 {
			v := make([]byte, 4)
			copy(v, e.value)
			dir.Write(v)
		} else {
			binary.Write(&dir, binary.LittleEndian, dataOff+uint32(data.Len()))
			data.Write(e.value)
		}
	}
	binary.Write(&dir, binary.LittleEndian, uint32(0))

	return append(dir.Bytes(), data.Bytes()...)
}

// buildTIFF assembles a little-endian TIFF stream with an IFD0 carrying
// make/model (when non-empty) and an EXIF sub-IFD with the given entries.
func buildTIFF(makeStr, modelStr string, exifEntries []ifdEntry) []byte {
	const ifd0Start = 8

	mkIFD0 := func(exifOff uint32) []byte {
		entries := []ifdEntry{}
		if makeStr != "" {
			entries = append(entries, ifdEntry{tagMake, ttASCII, uint32(len(makeStr) + 1), asciiVal(makeStr)})
		}
		if modelStr != "" {
			entries = append(entries, ifdEntry{tagModel, ttASCII, uint32(len(modelStr) + 1), asciiVal(modelStr)})
		}
		entries = append(entries, ifdEntry{tagExifIFDPointer, ttLong, 1, le32(exifOff)})
		return encodeIFD(entries, ifd0Start)
	}

	ifd0 := mkIFD0(0)
	exifOff := uint32(ifd0Start + len(ifd0))
	ifd0 = mkIFD0(exifOff)

	var buf bytes.Buffer
	buf.WriteString("II")
	binary.Write(&buf, binary.LittleEndian, uint16(0x2A))
	binary.Write(&buf, binary.LittleEndian, uint32(ifd0Start))
	buf.Write(ifd0)
	buf.Write(encodeIFD(exifEntries, exifOff))
	return buf.Bytes()
}

func scenarioExif() []ifdEntry {
	return []ifdEntry{
		{tagExposureTime, ttRational, 1, leRat(1, 250)},
		{tagFNumber, ttRational, 1, leRat(178, 100)},
		{tagISOSpeedRatings, ttShort, 1, le16(100)},
		{tagDateTimeOriginal, ttASCII, 20, asciiVal("2024:06:01 10:30:00")},
		{tagFocalLength, ttRational, 1, leRat(24, 1)},
	}
}

func TestExtractCameraInfo(t *testing.T) {
	info, err := ExtractCameraInfo(buildTIFF("Apple", "iPhone 15 Pro", scenarioExif()))
	require.NoError(t, err)

	assert.Equal(t, "Apple", info.Brand)
	assert.Equal(t, "iPhone 15 Pro", info.Model)
	assert.Equal(t, "24mm", info.FocalLength)
	assert.Equal(t, "f/1.78", info.Aperture)
	assert.Equal(t, "1/250", info.ShutterSpeed)
	assert.Equal(t, "ISO100", info.ISO)
	assert.Equal(t, "24mm f/1.78 1/250 ISO100", info.InfoLine())

	taken, err := time.Parse(time.RFC3339, info.DateTime)
	require.NoError(t, err)
	assert.Equal(t, 2024, taken.Year())
}

func TestExtractCameraInfoZeroExposure(t *testing.T) {
	entries := []ifdEntry{
		{tagExposureTime, ttRational, 1, leRat(0, 1)},
		{tagISOSpeedRatings, ttShort, 1, le16(400)},
	}

	info, err := ExtractCameraInfo(buildTIFF("Apple", "iPhone 15 Pro", entries))
	require.NoError(t, err)
	assert.Equal(t, "", info.ShutterSpeed)
	assert.Equal(t, "ISO400", info.ISO)
}

func TestExtractCameraInfoMissingFields(t *testing.T) {
	entries := []ifdEntry{
		{tagISOSpeedRatings, ttShort, 1, le16(200)},
	}

	info, err := ExtractCameraInfo(buildTIFF("", "", entries))
	require.NoError(t, err)

	assert.Equal(t, UnknownField, info.Brand)
	assert.Equal(t, UnknownField, info.Model)
	assert.Equal(t, "", info.FocalLength)
	assert.Equal(t, "", info.Aperture)
	assert.Equal(t, "", info.ShutterSpeed)
	assert.Equal(t, "ISO200", info.ISO)

	// no capture time in the file: the current clock is used
	dt, err := time.Parse(time.RFC3339, info.DateTime)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), dt, time.Minute)
}

func TestExtractCameraInfoNoExif(t *testing.T) {
	_, err := ExtractCameraInfo(jpegBytes(t, 8, 8))
	assert.ErrorIs(t, err, ErrNoExif)
}
