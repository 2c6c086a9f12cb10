package pixstore

import (
	"fmt"
	"math"
)

// DefaultMaxPixels bounds one image to a 10000x10000 grid, roughly 286 MB
// of payload per image.
const DefaultMaxPixels = 100_000_000

// Plan is the immutable partition of one encode run across bounded-size
// images. Pixels are packed before partitioning, so a pixel's three bytes
// never straddle an image boundary.
type Plan struct {
	FileSize       uint64 // payload length in bytes
	CompletePixels uint64 // full 3-byte pixels
	ExtraBits      uint8  // payload bits past the last complete pixel: 0, 8 or 16
	DataPixels     uint64 // CompletePixels plus the residual pixel, if any
	TotalPixels    uint64 // HeaderPixels + DataPixels
	MaxPixels      uint64 // per-image bound, a perfect square
	NumImages      int
}

// NewPlan partitions a payload of fileSize bytes into images of at most
// maxPixels pixels each. maxPixels must be a perfect square greater than
// HeaderPixels: full non-final images then have no padded cells, which
// keeps the decoder independent of the bound used at encode time.
func NewPlan(fileSize, maxPixels uint64) (Plan, error) {
	if maxPixels <= HeaderPixels {
		return Plan{}, fmt.Errorf("max pixels per image must exceed %d, got %d", HeaderPixels, maxPixels)
	}
	// The widest possible side is 2^32-1; clamping before the adjustment
	// loops keeps side*side from wrapping for bounds near 2^64.
	side := uint64(math.Sqrt(float64(maxPixels)))
	if side > math.MaxUint32 {
		side = math.MaxUint32
	}
	for side*side > maxPixels {
		side--
	}
	for side < math.MaxUint32 && (side+1)*(side+1) <= maxPixels {
		side++
	}
	if side*side != maxPixels {
		return Plan{}, fmt.Errorf("max pixels per image must be a perfect square, got %d", maxPixels)
	}

	p := Plan{
		FileSize:       fileSize,
		CompletePixels: fileSize / BytesPerPixel,
		ExtraBits:      uint8(fileSize % BytesPerPixel * 8),
		MaxPixels:      maxPixels,
	}
	p.DataPixels = p.CompletePixels
	if p.ExtraBits > 0 {
		p.DataPixels++
	}
	p.TotalPixels = HeaderPixels + p.DataPixels
	p.NumImages = int((p.TotalPixels + maxPixels - 1) / maxPixels)
	return p, nil
}

// TotalBytes is the exact payload length the plan's header promises.
func (p Plan) TotalBytes() uint64 {
	return p.CompletePixels*BytesPerPixel + uint64(residualBytes(p.ExtraBits))
}

// PixelsInImage returns how many real (non-padding) pixels image index
// holds, 1-based. Image 1 includes the HeaderPixels metadata slots.
func (p Plan) PixelsInImage(index int) uint64 {
	if index < 1 || index > p.NumImages {
		return 0
	}
	prior := uint64(index-1) * p.MaxPixels
	remaining := p.TotalPixels - prior
	if remaining > p.MaxPixels {
		return p.MaxPixels
	}
	return remaining
}

// PayloadBytesInImage returns how many payload bytes image index carries.
// Only the final image can end on a residual pixel of 1 or 2 bytes.
func (p Plan) PayloadBytesInImage(index int) uint64 {
	n := p.PixelsInImage(index)
	if n == 0 {
		return 0
	}
	if index == 1 {
		n -= HeaderPixels
	}
	b := n * BytesPerPixel
	if index == p.NumImages && p.ExtraBits > 0 {
		b -= BytesPerPixel - uint64(residualBytes(p.ExtraBits))
	}
	return b
}
