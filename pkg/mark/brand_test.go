package mark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveBrandKinds(t *testing.T) {
	apple := ResolveBrand("Apple")
	require.Equal(t, MarkImage, apple.Kind)
	require.NotNil(t, apple.Asset)

	huawei := ResolveBrand("HUAWEI")
	assert.Equal(t, MarkGlyph, huawei.Kind)
	assert.Equal(t, "📱", huawei.Char)
	assert.Equal(t, "HUAWEI", huawei.Text)

	nikon := ResolveBrand("NIKON CORPORATION")
	assert.Equal(t, MarkImage, nikon.Kind)
}

func TestResolveBrandUnknown(t *testing.T) {
	for _, b := range []string{"Samsung", "", "apple", "SONY ", "nikon corporation"} {
		m := ResolveBrand(b)
		assert.Equal(t, MarkNone, m.Kind, "brand %q", b)
		assert.Nil(t, m.Asset)
		assert.Empty(t, m.Char)
	}
}

func TestResolveBrandCaseSensitive(t *testing.T) {
	assert.Equal(t, MarkImage, ResolveBrand("SONY").Kind)
	assert.Equal(t, MarkNone, ResolveBrand("Sony").Kind)
	assert.Equal(t, MarkNone, ResolveBrand("sony").Kind)
}

func TestBrands(t *testing.T) {
	bs := Brands()
	require.Len(t, bs, 10)
	assert.Contains(t, bs, "Apple")
	assert.Contains(t, bs, "Hasselblad")

	// sorted for a stable manual-mode picker
	for i := 1; i < len(bs); i++ {
		assert.Less(t, bs[i-1], bs[i])
	}
}
