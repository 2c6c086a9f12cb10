package utils

import (
	"fmt"

	"github.com/pixstore/pixstore/pixstore"
)

// RunSeriesInfo prints the metadata a series promises without
// reconstructing any payload.
func RunSeriesInfo(imagePath string) error {
	key, imgs, err := pixstore.SeriesFor(imagePath)
	if err != nil {
		return err
	}
	first, err := pixstore.LoadImage(imgs[0].Path)
	if err != nil {
		return err
	}
	complete, extra, err := pixstore.ReadHeader(first)
	if err != nil {
		return err
	}
	total := complete*pixstore.BytesPerPixel + uint64(extra+7)/8

	fmt.Printf("Series: %s (%d image(s))\n", key.OutputName(), len(imgs))
	fmt.Printf("  Complete pixels: %d\n", complete)
	fmt.Printf("  Extra bits: %d\n", extra)
	fmt.Printf("  Payload: %d bytes (%s)\n", total, FormatSize(total))
	for _, im := range imgs {
		fmt.Printf("  - %s\n", im.Path)
	}
	return nil
}
