//go:build cgo

package mark

import (
	// Registers the HEIF/HEIC decoder with the image package. The libheif
	// bindings are cgo-only, so registration is limited to cgo builds.
	_ "github.com/strukturag/libheif/go/heif"
)
