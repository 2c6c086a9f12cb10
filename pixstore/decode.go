package pixstore

import (
	"bufio"
	"fmt"
	"image"
	"io"
)

// ImageProvider hands out the ordered image units of one series, so
// decode memory stays bounded by a single grid at a time.
type ImageProvider interface {
	Len() int
	// Image returns the unit at 0-based position i in series order.
	Image(i int) (*image.NRGBA, error)
}

// Reconstruction is sequential: the byte targets are only known once the
// header of image 1 has been read.
type decodeState int

const (
	stateAwaitHeader decodeState = iota
	stateComplete
	stateResidual
	stateDone
)

// Summary reports what one reconstruction produced.
type Summary struct {
	CompletePixels uint64
	ExtraBits      uint8
	BytesWritten   uint64
}

// ReadHeader extracts and decodes the metadata block from the first image
// of a series.
func ReadHeader(img *image.NRGBA) (complete uint64, extraBits uint8, err error) {
	if img.Rect.Dx()*img.Rect.Dy() < HeaderPixels {
		return 0, 0, fmt.Errorf("%w: first image too small for %d header pixels", ErrFormat, HeaderPixels)
	}
	var hdr [HeaderPixels]Pixel
	for i := range hdr {
		hdr[i] = PixelAt(img, i)
	}
	return DecodeHeader(hdr[:])
}

// Reconstruct walks the ordered images of one series, strips the header,
// and writes the original byte stream to w. The header-derived byte
// targets are the sole stopping authority; sentinel padding cells are
// never interpreted as payload. Running out of pixels before the targets
// are met fails with ErrCorrupt.
func Reconstruct(src ImageProvider, w io.Writer, progress Progress) (Summary, error) {
	if src.Len() == 0 {
		return Summary{}, fmt.Errorf("%w: empty series", ErrNotFound)
	}

	bw := bufio.NewWriterSize(w, 1<<20)
	var (
		state          = stateAwaitHeader
		sum            Summary
		targetComplete uint64
		targetTotal    uint64
	)

	for imgIdx := 0; imgIdx < src.Len() && state != stateDone; imgIdx++ {
		img, err := src.Image(imgIdx)
		if err != nil {
			return sum, err
		}
		cells := img.Rect.Dx() * img.Rect.Dy()
		slot := 0

		if state == stateAwaitHeader {
			complete, extra, err := ReadHeader(img)
			if err != nil {
				return sum, err
			}
			sum.CompletePixels = complete
			sum.ExtraBits = extra
			targetComplete = complete * BytesPerPixel
			targetTotal = targetComplete + uint64(residualBytes(extra))
			slot = HeaderPixels
			switch {
			case targetComplete > 0:
				state = stateComplete
			case extra > 0:
				state = stateResidual
			default:
				state = stateDone
			}
		}

		for ; slot < cells && state != stateDone; slot++ {
			px := PixelAt(img, slot)
			switch state {
			case stateComplete:
				if _, err := bw.Write(px[:]); err != nil {
					return sum, err
				}
				sum.BytesWritten += BytesPerPixel
				if sum.BytesWritten == targetComplete {
					if targetTotal > targetComplete {
						state = stateResidual
					} else {
						state = stateDone
					}
				}
			case stateResidual:
				n := int(targetTotal - targetComplete)
				if _, err := bw.Write(px[:n]); err != nil {
					return sum, err
				}
				sum.BytesWritten += uint64(n)
				state = stateDone
			}
			if progress != nil {
				progress(sum.BytesWritten, targetTotal)
			}
		}
	}

	if state != stateDone {
		return sum, fmt.Errorf("%w: series ends after %d of %d bytes", ErrCorrupt, sum.BytesWritten, targetTotal)
	}
	if err := bw.Flush(); err != nil {
		return sum, err
	}
	return sum, nil
}
