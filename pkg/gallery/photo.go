package gallery

import (
	"time"
)

// ThumbMeta describes one generated thumbnail.
type ThumbMeta struct {
	X       int
	Y       int
	RelPath string
	Path    string
}

// Photo is one portfolio image with the metadata shown in the lightbox.
type Photo struct {
	InPath   string
	OutPath  string
	BasePath string
	RelPath  string
	ModTime  time.Time

	Resize map[string]ThumbMeta
	Taken  time.Time

	Title       string
	Description string

	Make  string
	Model string

	Aperture    float64
	FocalLength string
	ISO         int64
	Speed       string

	Width  int64
	Height int64
}

// Caption is the metadata line shown under a photo in the lightbox.
func (p *Photo) Caption() string {
	s := p.Model
	if p.Speed != "" {
		s += " · " + p.Speed
	}
	if p.FocalLength != "" {
		s += " · " + p.FocalLength
	}
	return s
}
