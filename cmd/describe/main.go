// describe drafts theme descriptions for the portfolio using a generative
// AI model, printing suggestions for themes that don't have one yet.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	_ "image/jpeg"
	_ "image/png"

	"google.golang.org/genai"
	"k8s.io/klog/v2"

	"github.com/lensmark/lensmark/pkg/gallery"
)

var (
	inDir      = flag.String("in", "", "Location of input directory")
	outDir     = flag.String("out", "", "Location of output directory for thumbnails and cache")
	themesFile = flag.String("themes", "themes.yaml", "Theme definitions file")
	overwrite  = flag.Bool("o", false, "suggest descriptions for themes that already have one")
	dryRun     = flag.Bool("dry-run", false, "print suggestions without writing them to the themes file")
	modelName  = flag.String("model", "gemini-2.5-flash", "model to draft descriptions with")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	if *inDir == "" || *outDir == "" {
		klog.Fatalf("Usage: %s -in <input_dir> -out <output_dir> [-themes themes.yaml]", os.Args[0])
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: os.Getenv("GOOGLE_AI_API_KEY"),
	})
	if err != nil {
		klog.Fatalf("genai client: %v", err)
	}

	c := &gallery.Config{
		InDir:      *inDir,
		OutDir:     *outDir,
		ThemesFile: *themesFile,
	}

	klog.Infof("Collecting photos from %s...", *inDir)
	pf, err := gallery.Collect(c)
	if err != nil {
		klog.Fatalf("unable to collect: %v", err)
	}

	suggested := 0
	for _, t := range pf.Themes {
		if !*overwrite && t.Description != "" {
			klog.Infof("%s already has a description, skipping", t.Title)
			continue
		}

		desc, err := gallery.Describe(ctx, client, *modelName, t)
		if err != nil {
			klog.Errorf("describe %s: %v", t.Title, err)
			continue
		}

		suggested++
		t.Description = desc
		fmt.Printf("%s: %s\n", t.Title, desc)
	}

	if suggested > 0 && !*dryRun {
		if err := gallery.SaveThemes(*themesFile, pf.Themes); err != nil {
			klog.Fatalf("save themes: %v", err)
		}
		klog.Infof("wrote %d descriptions to %s", suggested, *themesFile)
	}

	klog.Infof("describe completed. Suggested %d descriptions across %d themes", suggested, len(pf.Themes))
}
