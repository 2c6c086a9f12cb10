package pixstore

import (
	"encoding/binary"
	"fmt"
)

// The first HeaderPixels raster slots of image 1 carry the payload
// metadata: pixels 0-3 hold the complete-pixel count as a 96-bit
// big-endian integer (12 bytes in R,G,B channel order), pixel 4 is
// (0, 0, extraBits).

const (
	// HeaderPixels is the number of raster slots reserved for metadata.
	HeaderPixels = 5

	// headerCountBytes is the wire width of the pixel-count field.
	headerCountBytes = 12
)

// EncodeHeader serializes payload metadata into the five header pixels.
// complete is the number of full 3-byte payload pixels; extraBits is the
// number of payload bits left over, always 0, 8 or 16 for whole-byte
// payloads. The upper 32 bits of the 96-bit count field stay zero: a
// uint64 pixel count already covers any real file.
func EncodeHeader(complete uint64, extraBits uint8) [HeaderPixels]Pixel {
	var raw [headerCountBytes]byte
	binary.BigEndian.PutUint64(raw[4:], complete)

	var px [HeaderPixels]Pixel
	for i := 0; i < 4; i++ {
		px[i] = Pixel{raw[i*3], raw[i*3+1], raw[i*3+2]}
	}
	px[4] = Pixel{0, 0, extraBits}
	return px
}

// DecodeHeader reverses EncodeHeader exactly. It fails with ErrFormat when
// fewer than HeaderPixels pixels are supplied, when the stored count does
// not fit a uint64, or when the extra-bits field is not 0, 8 or 16.
func DecodeHeader(px []Pixel) (complete uint64, extraBits uint8, err error) {
	if len(px) < HeaderPixels {
		return 0, 0, fmt.Errorf("%w: header needs %d pixels, got %d", ErrFormat, HeaderPixels, len(px))
	}
	var raw [headerCountBytes]byte
	for i := 0; i < 4; i++ {
		raw[i*3] = px[i][0]
		raw[i*3+1] = px[i][1]
		raw[i*3+2] = px[i][2]
	}
	for _, b := range raw[:4] {
		if b != 0 {
			return 0, 0, fmt.Errorf("%w: pixel count exceeds supported range", ErrFormat)
		}
	}
	complete = binary.BigEndian.Uint64(raw[4:])
	extraBits = px[4][2]
	switch extraBits {
	case 0, 8, 16:
	default:
		return 0, 0, fmt.Errorf("%w: extra bits %d not in {0, 8, 16}", ErrFormat, extraBits)
	}
	return complete, extraBits, nil
}
