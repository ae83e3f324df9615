package gallery

import (
	"fmt"

	"k8s.io/klog/v2"
)

// Collect walks the input tree, generates thumbnails, and assembles the
// themed portfolio described by the themes file.
func Collect(c *Config) (*Portfolio, error) {
	klog.Infof("build: %s -> %s", c.InDir, c.OutDir)

	themes, err := LoadThemes(c.ThemesFile)
	if err != nil {
		return nil, fmt.Errorf("themes: %w", err)
	}

	ps, err := Find(c.InDir)
	if err != nil {
		return nil, fmt.Errorf("find: %w", err)
	}

	for _, p := range ps {
		klog.V(1).Infof("build photo: %+v", p)
		p.Resize, err = thumbnails(*p, c.Thumbnails, c.OutDir)
		if err != nil {
			return nil, fmt.Errorf("thumbnails: %w", err)
		}
	}

	pf, err := Assemble(c, themes, ps)
	if err != nil {
		return nil, fmt.Errorf("assemble: %w", err)
	}

	klog.Infof("assembled %d themes from %d photos", len(pf.Themes), len(pf.Photos))
	return pf, nil
}
