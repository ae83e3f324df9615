// gallery builds the themed portfolio site, optionally serving it and
// rebuilding on changes.
package main

import (
	"flag"
	"fmt"
	"path/filepath"
	"slices"
	"sync"

	_ "image/jpeg"
	_ "image/png"

	"k8s.io/klog/v2"

	"github.com/fsnotify/fsnotify"
	"github.com/lensmark/lensmark/pkg/gallery"
	"github.com/lensmark/lensmark/pkg/manage"
)

var (
	inDir       = flag.String("in", "", "Location of input directory")
	outDir      = flag.String("out", "", "Location of output directory")
	themesFile  = flag.String("themes", "themes.yaml", "Theme definitions file")
	title       = flag.String("title", "lensmark 📸", "Title of photo collection")
	description = flag.String("description", "(insert description here)", "description of photo collection")
	seed        = flag.Int64("seed", 0, "shuffle galleries with this seed; 0 keeps curated order")
	listen      = flag.Bool("listen", false, "serve content via HTTP")
	addr        = flag.String("addr", "localhost:12800", "host:port to bind to in listen mode")
	watchFlag   = flag.Bool("watch", false, "watch for changes to inDir and rebuild")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	if *inDir == "" {
		klog.Exitf("--in is a required flag")
	}

	if *outDir == "" {
		klog.Exitf("--out is a required flag")
	}

	c := &gallery.Config{
		InDir:       *inDir,
		OutDir:      *outDir,
		ThemesFile:  *themesFile,
		Collection:  *title,
		Description: *description,
		ShuffleSeed: *seed,
	}

	build := func() error {
		pf, err := gallery.Collect(c)
		if err != nil {
			return fmt.Errorf("collect: %w", err)
		}
		return gallery.Render(c, pf)
	}

	pf, err := gallery.Collect(c)
	if err != nil {
		klog.Exitf("build failed: %v", err)
	}

	if err := gallery.Render(c, pf); err != nil {
		klog.Exitf("render failed: %v", err)
	}

	var wg sync.WaitGroup
	if *watchFlag {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := watch(c, build); err != nil {
				klog.Errorf("watch failed: %v", err)
			}
		}()
	}

	if *listen {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := manage.New(c, build)
			if err := s.ListenAndServe(*addr); err != nil {
				klog.Exitf("listen failed: %v", err)
			}
		}()
	}

	wg.Wait()
}

// watch watches the input tree for changes and rebuilds
func watch(c *gallery.Config, build func() error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("new watcher: %w", err)
	}
	defer w.Close()

	go func() {
		for {
			select {
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				klog.V(1).Infof("event: %v", event)
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove) {
					if err := build(); err != nil {
						klog.Errorf("rebuild failed: %v", err)
					}
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				klog.Errorf("watch error: %v", err)
			}
		}
	}()

	dirs := []string{c.InDir, filepath.Dir(c.ThemesFile)}
	slices.Sort(dirs)
	dirs = slices.Compact(dirs)

	klog.Infof("watching %d dirs ...", len(dirs))
	for _, d := range dirs {
		if err := w.Add(d); err != nil {
			return fmt.Errorf("watch %s: %w", d, err)
		}
	}

	<-make(chan struct{})
	return nil
}
