package gallery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/barasher/go-exiftool"
	"github.com/karrick/godirwalk"
	"k8s.io/klog/v2"
)

var exifDate = "2006:01:02 15:04:05"

var photoExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

func read(path string, et *exiftool.Exiftool) (Photo, error) {
	fis := et.ExtractMetadata(path)
	fi := fis[0]
	p := Photo{}
	var err error

	if fi.Err != nil {
		return p, fmt.Errorf("extract fail for %q: %w", path, fi.Err)
	}

	for k, v := range fi.Fields {
		klog.V(2).Infof("%q=%v\n", k, v)
	}

	p.Make, err = fi.GetString("Make")
	if err != nil {
		klog.V(1).Infof("unable to get make for %s: %v", path, err)
	}

	p.Model, err = fi.GetString("Model")
	if err != nil {
		klog.V(1).Infof("unable to get model for %s: %v", path, err)
	}

	p.Height, err = fi.GetInt("ImageHeight")
	if err != nil {
		return p, fmt.Errorf("get ImageHeight: %w", err)
	}

	p.Width, err = fi.GetInt("ImageWidth")
	if err != nil {
		return p, fmt.Errorf("get ImageWidth: %w", err)
	}

	p.ISO, err = fi.GetInt("ISO")
	if err != nil {
		klog.V(1).Infof("unable to get ISO for %s: %v", path, err)
	}

	p.Aperture, err = fi.GetFloat("ApertureValue")
	if err != nil {
		klog.V(1).Infof("unable to get aperture for %s: %v", path, err)
	}

	p.Speed, err = fi.GetString("ShutterSpeed")
	if err != nil {
		klog.V(1).Infof("unable to get shutter speed for %s: %v", path, err)
	}

	p.FocalLength, err = fi.GetString("FocalLength")
	if err != nil {
		klog.V(1).Infof("unable to get focal length for %s: %v", path, err)
	}
	p.FocalLength = strings.ReplaceAll(p.FocalLength, ".0", "")

	p.Title, err = fi.GetString("Headline")
	if err != nil {
		klog.V(2).Infof("unable to get headline: %v", err)
	}

	p.Description, err = fi.GetString("ImageDescription")
	if err != nil {
		klog.V(2).Infof("unable to get description: %v", err)
	}

	ds, err := fi.GetString("DateTimeOriginal")
	if err != nil {
		klog.V(1).Infof("unable to get date time for %s: %v", path, err)
		return p, nil
	}

	p.Taken, err = time.Parse(exifDate, ds)
	if err != nil {
		return p, fmt.Errorf("parse time %q: %w", ds, err)
	}

	return p, nil
}

// hidden reports whether path is a dotfile to skip. The walk root itself is
// exempt so an input dir like "." or ".photos" still gets scanned.
func hidden(root, path string) bool {
	return path != root && strings.HasPrefix(filepath.Base(path), ".")
}

// Find walks a portfolio input directory and reads every photo's metadata.
func Find(root string) ([]*Photo, error) {
	found := []*Photo{}

	et, err := exiftool.NewExiftool()
	if err != nil {
		return nil, fmt.Errorf("exiftool: %w", err)
	}
	defer et.Close()

	err = godirwalk.Walk(root, &godirwalk.Options{
		Callback: func(path string, de *godirwalk.Dirent) error {
			if hidden(root, path) {
				return godirwalk.SkipThis
			}

			if de.IsDir() || !photoExts[strings.ToLower(filepath.Ext(path))] {
				return nil
			}

			klog.V(1).Infof("found %s", path)
			p, err := read(path, et)
			if err != nil {
				klog.Errorf("read failure: %v", err)
				return err
			}

			p.InPath = path
			p.RelPath, err = filepath.Rel(root, path)
			if err != nil {
				return err
			}
			p.BasePath = urlSafePath(filepath.Base(path))

			fi, err := os.Stat(path)
			if err != nil {
				klog.Errorf("stat failure: %v", err)
				return err
			}
			p.ModTime = fi.ModTime()

			found = append(found, &p)
			return nil
		},
	})

	return found, err
}
