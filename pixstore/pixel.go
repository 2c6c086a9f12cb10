package pixstore

// Pixel is one RGB raster cell, 8 bits per channel, no alpha.
type Pixel [3]uint8

// BytesPerPixel is the payload capacity of one full pixel.
const BytesPerPixel = 3

// sentinelChannel fills raster cells past the real pixel count. Padding is
// cosmetic only; the decoder stops on header-derived counters and never
// reads these cells as payload.
const sentinelChannel = 0xFF

// AppendPixels packs src onto dst, three bytes per pixel in stream order.
// A trailing group of one or two bytes becomes a final pixel with the
// missing channels zeroed; the zeros carry no meaning, the header's extra
// bits tell the decoder how many residual bytes are real.
func AppendPixels(dst []Pixel, src []byte) []Pixel {
	for len(src) >= BytesPerPixel {
		dst = append(dst, Pixel{src[0], src[1], src[2]})
		src = src[BytesPerPixel:]
	}
	switch len(src) {
	case 1:
		dst = append(dst, Pixel{src[0], 0, 0})
	case 2:
		dst = append(dst, Pixel{src[0], src[1], 0})
	}
	return dst
}

// residualBytes is the byte count carried by the trailing partial pixel.
func residualBytes(extraBits uint8) int {
	return (int(extraBits) + 7) / 8
}
