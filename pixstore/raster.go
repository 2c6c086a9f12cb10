package pixstore

import (
	"image"
	"math"
)

// SideFor returns the square grid side for n pixels, ceil(sqrt(n)).
func SideFor(n int) int {
	if n <= 0 {
		return 0
	}
	s := int(math.Sqrt(float64(n)))
	for s*s < n {
		s++
	}
	for s > 1 && (s-1)*(s-1) >= n {
		s--
	}
	return s
}

// BuildImage lays an ordered pixel list into a fresh square NRGBA grid in
// row-major order. Unused trailing cells stay white; the waste is bounded
// by side*side - n < 2*side + 1 and never carries meaning.
func BuildImage(pixels []Pixel) *image.NRGBA {
	side := SideFor(len(pixels))
	img := image.NewNRGBA(image.Rect(0, 0, side, side))
	// Sentinel padding and opaque alpha in one pass.
	for i := range img.Pix {
		img.Pix[i] = sentinelChannel
	}
	for i, px := range pixels {
		off := (i/side)*img.Stride + (i%side)*4
		img.Pix[off] = px[0]
		img.Pix[off+1] = px[1]
		img.Pix[off+2] = px[2]
	}
	return img
}

// PixelAt reads raster slot i of a square NRGBA grid, row-major.
func PixelAt(img *image.NRGBA, i int) Pixel {
	side := img.Rect.Dx()
	off := (i/side)*img.Stride + (i%side)*4
	return Pixel{img.Pix[off], img.Pix[off+1], img.Pix[off+2]}
}
