package pixstore

import (
	"fmt"
	"image"
	"io"
)

// ImageSink receives finished image units in sequence order, 1-based.
// The encoder holds only the unit being built; the sink owns persistence.
type ImageSink func(index int, img *image.NRGBA) error

// Progress, when non-nil, is called with the running payload byte count
// and the byte total as the stream advances.
type Progress func(done, total uint64)

// readChunk caps one read into the packing buffer. A multiple of
// BytesPerPixel, so only the very last read of the payload can end on a
// partial pixel.
const readChunk = 9 << 20

// EncodeStream packs size bytes from r into bounded square images and
// hands each finished unit to sink. Memory stays bounded by one image
// buffer plus one read chunk regardless of payload size. The returned
// plan describes the partition that was produced.
func EncodeStream(r io.Reader, size, maxPixels uint64, sink ImageSink, progress Progress) (Plan, error) {
	plan, err := NewPlan(size, maxPixels)
	if err != nil {
		return Plan{}, err
	}

	pixels := make([]Pixel, 0, int(min(plan.TotalPixels, plan.MaxPixels)))
	chunk := make([]byte, min(uint64(readChunk), size))
	var done uint64

	for i := 1; i <= plan.NumImages; i++ {
		pixels = pixels[:0]
		if i == 1 {
			hdr := EncodeHeader(plan.CompletePixels, plan.ExtraBits)
			pixels = append(pixels, hdr[:]...)
		}
		toRead := plan.PayloadBytesInImage(i)
		for toRead > 0 {
			n := min(toRead, uint64(readChunk))
			if _, err := io.ReadFull(r, chunk[:n]); err != nil {
				return plan, fmt.Errorf("payload read failed at byte %d: %w", done, err)
			}
			pixels = AppendPixels(pixels, chunk[:n])
			toRead -= n
			done += n
			if progress != nil {
				progress(done, plan.FileSize)
			}
		}
		if err := sink(i, BuildImage(pixels)); err != nil {
			return plan, err
		}
	}
	return plan, nil
}
