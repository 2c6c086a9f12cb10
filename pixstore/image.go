package pixstore

import (
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
)

// The on-disk container is PNG: lossless, 8-bit RGB, no alpha semantics.
// Any lossy transform of the stored channels breaks the codec.

// SaveImage writes one image unit to path.
func SaveImage(img *image.NRGBA, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// LoadImage reads one image unit and normalizes it to NRGBA so raster
// slots can be addressed directly.
func LoadImage(path string) (*image.NRGBA, error) {
	img, err := imaging.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return imaging.Clone(img), nil
}
