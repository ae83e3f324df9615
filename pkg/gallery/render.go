package gallery

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"k8s.io/klog/v2"
)

//go:embed assets/portfolio/index.tmpl
var idxTmpl string

//go:embed assets/portfolio/theme.tmpl
var themeTmpl string

//go:embed assets/portfolio/style.css
var styleText string

// Render writes the portfolio site: an index of theme cards plus one
// masonry/lightbox page per theme.
func Render(c *Config, pf *Portfolio) error {
	if err := writeIndex(c, pf); err != nil {
		return fmt.Errorf("write index: %w", err)
	}

	if err := writeThemes(c, pf); err != nil {
		return fmt.Errorf("write themes: %w", err)
	}

	return nil
}

func writeIndex(c *Config, pf *Portfolio) error {
	klog.V(1).Infof("writing index with %d themes ...", len(pf.Themes))

	data := struct {
		Collection  string
		Description string
		Themes      []*Theme
		Style       template.CSS
	}{
		Collection:  c.Collection,
		Description: c.Description,
		Themes:      pf.Themes,
		Style:       template.CSS(styleText),
	}

	bs, err := render("index", idxTmpl, data)
	if err != nil {
		return err
	}

	p := filepath.Join(c.OutDir, "index.html")
	klog.V(1).Infof("Writing theme index to %s", p)
	return os.WriteFile(p, bs, 0o644)
}

func writeThemes(c *Config, pf *Portfolio) error {
	klog.Infof("Writing out %d themes ...", len(pf.Themes))
	for i, t := range pf.Themes {
		klog.V(1).Infof("rendering theme %s with %d photos ...", t.Title, len(t.Photos))

		prev, next := pf.Themes[(i+len(pf.Themes)-1)%len(pf.Themes)], pf.Themes[(i+1)%len(pf.Themes)]
		data := struct {
			Collection string
			Theme      *Theme
			Prev       *Theme
			Next       *Theme
			Style      template.CSS
		}{
			Collection: c.Collection,
			Theme:      t,
			Prev:       prev,
			Next:       next,
			Style:      template.CSS(styleText),
		}

		bs, err := render("theme", themeTmpl, data)
		if err != nil {
			return err
		}

		dir := filepath.Join(c.OutDir, "themes", t.Slug)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir: %w", err)
		}

		p := filepath.Join(dir, "index.html")
		klog.V(1).Infof("Writing theme page to %s", p)
		if err := os.WriteFile(p, bs, 0o644); err != nil {
			return fmt.Errorf("write file: %w", err)
		}
	}

	return nil
}

func render(name string, ts string, data any) ([]byte, error) {
	tmpl, err := template.New(name).Funcs(tmplFunctions()).Parse(ts)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	var tpl bytes.Buffer
	if err := tmpl.Execute(&tpl, data); err != nil {
		return nil, fmt.Errorf("execute: %w", err)
	}

	return tpl.Bytes(), nil
}

// tmplFunctions are functions available to our templates.
func tmplFunctions() template.FuncMap {
	return template.FuncMap{
		"Odd": func(i int) bool {
			return i%2 == 1
		},
		"ThumbURL": func(root string, p *Photo, size string) string {
			if p == nil {
				return ""
			}
			t, ok := p.Resize[size]
			if !ok {
				return root + "/" + urlSafePath(p.RelPath)
			}
			return root + "/" + t.RelPath
		},
		"BasePath": filepath.Base,
	}
}
