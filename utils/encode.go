package utils

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	xxhash "github.com/cespare/xxhash/v2"

	"github.com/pixstore/pixstore/pixstore"
)

// EncodeResult summarizes one encode run.
type EncodeResult struct {
	Plan   pixstore.Plan
	Files  []string // generated image paths, in sequence order
	Digest uint64   // XXH64 of the payload bytes, for eyeball verification
}

// RunEncodeFile converts inputPath into a PNG series written to outDir
// (the input's own directory when outDir is empty), streaming the payload
// one image unit at a time. maxPixels of 0 selects the default bound.
func RunEncodeFile(inputPath, outDir string, maxPixels uint64) (*EncodeResult, error) {
	if maxPixels == 0 {
		maxPixels = pixstore.DefaultMaxPixels
	}
	f, err := os.Open(inputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", pixstore.ErrNotFound, inputPath)
		}
		return nil, err
	}
	defer f.Close()
	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}

	base, ext := pixstore.SplitSource(inputPath)
	if outDir == "" {
		outDir = filepath.Dir(inputPath)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, err
	}

	res := &EncodeResult{}
	sink := func(index int, img *image.NRGBA) error {
		path := filepath.Join(outDir, pixstore.ImageName(base, index, ext))
		if err := pixstore.SaveImage(img, path); err != nil {
			return err
		}
		res.Files = append(res.Files, path)
		return nil
	}

	digest := xxhash.New()
	progress := newProgressPrinter("  Reading")
	plan, err := pixstore.EncodeStream(io.TeeReader(f, digest), uint64(fi.Size()), maxPixels, sink, progress.update)
	if err != nil {
		return nil, err
	}
	res.Plan = plan
	res.Digest = digest.Sum64()
	return res, nil
}
