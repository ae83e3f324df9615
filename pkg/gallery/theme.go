package gallery

import (
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
	"k8s.io/klog/v2"
)

// Theme is one curated section of the portfolio.
type Theme struct {
	Title       string   `mapstructure:"title" yaml:"title"`
	Description string   `mapstructure:"description" yaml:"description,omitempty"`
	Cover       string   `mapstructure:"cover" yaml:"cover,omitempty"`
	Images      []string `mapstructure:"images" yaml:"images"`

	Slug       string   `mapstructure:"-" yaml:"-"`
	Photos     []*Photo `mapstructure:"-" yaml:"-"`
	CoverPhoto *Photo   `mapstructure:"-" yaml:"-"`
}

// Portfolio is an assembled site: every theme with its photos attached.
type Portfolio struct {
	Themes []*Theme
	Photos []*Photo
}

// LoadThemes reads the theme definitions from a YAML file.
func LoadThemes(path string) ([]*Theme, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read themes: %w", err)
	}

	var themes []*Theme
	if err := v.UnmarshalKey("themes", &themes); err != nil {
		return nil, fmt.Errorf("unmarshal themes: %w", err)
	}

	if len(themes) == 0 {
		return nil, fmt.Errorf("no themes defined in %s", path)
	}

	for _, t := range themes {
		t.Slug = slugify(t.Title)
	}

	return themes, nil
}

// SaveThemes writes theme definitions back to the YAML file, keeping the
// shape LoadThemes reads.
func SaveThemes(path string, themes []*Theme) error {
	bs, err := yaml.Marshal(map[string][]*Theme{"themes": themes})
	if err != nil {
		return fmt.Errorf("marshal themes: %w", err)
	}
	return os.WriteFile(path, bs, 0o644)
}

// Assemble attaches discovered photos to their themes and fills covers. A
// non-zero seed shuffles each gallery per build; zero keeps curated order.
func Assemble(c *Config, themes []*Theme, photos []*Photo) (*Portfolio, error) {
	byRel := map[string]*Photo{}
	for _, p := range photos {
		byRel[p.RelPath] = p
		byRel[p.BasePath] = p
	}

	for _, t := range themes {
		for _, name := range t.Images {
			p, ok := byRel[name]
			if !ok {
				klog.Warningf("theme %q references missing photo %q", t.Title, name)
				continue
			}
			t.Photos = append(t.Photos, p)
		}

		if len(t.Photos) == 0 {
			return nil, fmt.Errorf("theme %q has no photos", t.Title)
		}

		if t.Cover != "" {
			t.CoverPhoto = byRel[t.Cover]
		}
		if t.CoverPhoto == nil {
			klog.V(1).Infof("theme %q has no cover, using first photo", t.Title)
			t.CoverPhoto = t.Photos[0]
		}

		if c.ShuffleSeed != 0 {
			shuffle(t.Photos, c.ShuffleSeed)
		}
	}

	return &Portfolio{Themes: themes, Photos: photos}, nil
}

func shuffle(ps []*Photo, seed int64) {
	r := rand.New(rand.NewSource(seed))
	r.Shuffle(len(ps), func(i, j int) {
		ps[i], ps[j] = ps[j], ps[i]
	})
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "-")
	return urlSafePath(s)
}
