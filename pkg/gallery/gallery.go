// Package gallery builds a themed, static photo-portfolio site: each theme
// is a curated set of photos rendered as a masonry grid with a lightbox
// viewer, plus an index of theme cards.
package gallery

import "regexp"

// Config holds configuration for a portfolio build.
type Config struct {
	InDir      string
	OutDir     string
	ThemesFile string

	Collection  string
	Description string

	// ShuffleSeed randomizes gallery order per build when non-zero; zero
	// keeps the curated order from the themes file.
	ShuffleSeed int64

	Thumbnails map[string]ThumbOpts
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._/-]+`)

// urlSafePath rewrites a relative path so it is safe to publish as a URL.
func urlSafePath(p string) string {
	return unsafeChars.ReplaceAllString(p, "_")
}
