package utils

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"sort"

	xxhash "github.com/cespare/xxhash/v2"

	"github.com/pixstore/pixstore/pixstore"
)

// fileProvider loads series images lazily so only one grid is resident.
type fileProvider []pixstore.SeriesImage

func (p fileProvider) Len() int { return len(p) }

func (p fileProvider) Image(i int) (*image.NRGBA, error) {
	return pixstore.LoadImage(p[i].Path)
}

// DecodeResult summarizes one reconstructed series.
type DecodeResult struct {
	OutputPath string
	Summary    pixstore.Summary
	Digest     uint64 // XXH64 of the reconstructed bytes
	Skipped    bool   // destination existed, nothing was written
}

// RunDecodeImage reconstructs the series that imagePath belongs to,
// writing {base}.{ext} next to the images. An existing destination is
// left untouched and reported as skipped.
func RunDecodeImage(imagePath string) (*DecodeResult, error) {
	key, imgs, err := pixstore.SeriesFor(imagePath)
	if err != nil {
		return nil, err
	}
	res, err := decodeSeries(key, imgs, filepath.Dir(imagePath))
	if errors.Is(err, pixstore.ErrExists) {
		return &DecodeResult{OutputPath: filepath.Join(filepath.Dir(imagePath), key.OutputName()), Skipped: true}, nil
	}
	return res, err
}

// RunDecodeDir reconstructs every series found in dir. Failures are
// collected per series and joined into the returned error; one bad series
// never stops the others.
func RunDecodeDir(dir string) ([]*DecodeResult, error) {
	groups, err := pixstore.FindSeries(dir)
	if err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return nil, fmt.Errorf("%w: no image series in %s", pixstore.ErrNotFound, dir)
	}

	keys := make([]pixstore.SeriesKey, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Base != keys[j].Base {
			return keys[i].Base < keys[j].Base
		}
		return keys[i].Ext < keys[j].Ext
	})

	var (
		results []*DecodeResult
		errs    []error
	)
	for _, key := range keys {
		res, err := decodeSeries(key, groups[key], dir)
		if errors.Is(err, pixstore.ErrExists) {
			res = &DecodeResult{OutputPath: filepath.Join(dir, key.OutputName()), Skipped: true}
			err = nil
		}
		if err != nil {
			fmt.Printf("  Error reconstructing %s: %v\n", key.OutputName(), err)
			errs = append(errs, fmt.Errorf("%s: %w", key.OutputName(), err))
			continue
		}
		if res.Skipped {
			fmt.Printf("  %s already exists, skipping\n", res.OutputPath)
		} else {
			fmt.Printf("  %s (%s) xxh64=%016x\n", res.OutputPath, FormatSize(res.Summary.BytesWritten), res.Digest)
		}
		results = append(results, res)
	}
	return results, errors.Join(errs...)
}

func decodeSeries(key pixstore.SeriesKey, imgs []pixstore.SeriesImage, dir string) (*DecodeResult, error) {
	if err := pixstore.CheckContiguous(imgs); err != nil {
		return nil, err
	}

	outPath := filepath.Join(dir, key.OutputName())
	if _, err := os.Stat(outPath); err == nil {
		return nil, fmt.Errorf("%w: %s", pixstore.ErrExists, outPath)
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return nil, err
	}

	digest := xxhash.New()
	progress := newProgressPrinter("  Writing")
	sum, err := pixstore.Reconstruct(fileProvider(imgs), io.MultiWriter(out, digest), progress.update)
	if err != nil {
		out.Close()
		// Drop the partial output so a later run is not skipped over it.
		os.Remove(outPath)
		return nil, err
	}
	if err := out.Close(); err != nil {
		return nil, err
	}
	return &DecodeResult{OutputPath: outPath, Summary: sum, Digest: digest.Sum64()}, nil
}
