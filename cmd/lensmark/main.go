// lensmark stamps a photo with a caption band built from its camera metadata.
package main

import (
	"flag"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"time"

	"k8s.io/klog/v2"

	"github.com/lensmark/lensmark/pkg/mark"
)

var (
	inFile     = flag.String("in", "", "photo to watermark")
	outFile    = flag.String("out", mark.ExportName, "where to write the watermarked JPEG")
	brand      = flag.String("brand", "", "override the detected camera brand (manual mode)")
	model      = flag.String("model", "", "override the detected camera model (manual mode)")
	quality    = flag.Int("quality", mark.ExportQuality, "export JPEG quality")
	listBrands = flag.Bool("brands", false, "list the selectable brands and exit")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	if *listBrands {
		for _, b := range mark.Brands() {
			fmt.Println(b)
		}
		return
	}

	if *inFile == "" {
		klog.Exitf("--in is a required flag")
	}

	bs, err := os.ReadFile(*inFile)
	if err != nil {
		klog.Exitf("read failed: %v", err)
	}

	st, err := os.Stat(*inFile)
	modTime := time.Now()
	if err == nil {
		modTime = st.ModTime()
	}

	f := mark.File{
		Name:      filepath.Base(*inFile),
		MediaType: mime.TypeByExtension(filepath.Ext(*inFile)),
		ModTime:   modTime,
		Data:      bs,
	}

	res, err := mark.Run(f, mark.Options{Brand: *brand, Model: *model, Quality: *quality})
	if err != nil {
		klog.Errorf("watermark failed: %v", err)
		fmt.Fprintln(os.Stderr, "Please use a JPG or PNG photo")
		os.Exit(1)
	}

	dest := *outFile
	if !res.Watermarked {
		klog.Infof("%s has no camera metadata; writing it unmodified", res.File.Name)
		// the untouched photo keeps its own name and encoding
		if dest == mark.ExportName {
			dest = res.File.Name
		}
	} else {
		klog.Infof("caption: %s / %s / %s", res.Info.Model, res.Info.CaptionDate(), res.Info.InfoLine())
	}

	if err := os.WriteFile(dest, res.Output, 0o644); err != nil {
		klog.Exitf("write failed: %v", err)
	}

	klog.Infof("wrote %s (%d bytes)", dest, len(res.Output))
}
