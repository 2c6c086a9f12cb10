package api

import (
	"bytes"
	"image"

	"github.com/pixstore/pixstore/pixstore"
)

// EncodeBytes converts a payload held in memory into its ordered image
// units. maxPixels of 0 selects the default per-image bound.
func EncodeBytes(data []byte, maxPixels uint64) ([]*image.NRGBA, error) {
	if maxPixels == 0 {
		maxPixels = pixstore.DefaultMaxPixels
	}
	var imgs []*image.NRGBA
	sink := func(index int, img *image.NRGBA) error {
		imgs = append(imgs, img)
		return nil
	}
	if _, err := pixstore.EncodeStream(bytes.NewReader(data), uint64(len(data)), maxPixels, sink, nil); err != nil {
		return nil, err
	}
	return imgs, nil
}

// memoryProvider adapts an in-memory image slice to the codec's
// one-at-a-time provider.
type memoryProvider []*image.NRGBA

func (m memoryProvider) Len() int { return len(m) }

func (m memoryProvider) Image(i int) (*image.NRGBA, error) { return m[i], nil }

// DecodeImages reconstructs the payload from image units in series order.
func DecodeImages(imgs []*image.NRGBA) ([]byte, error) {
	var out bytes.Buffer
	if _, err := pixstore.Reconstruct(memoryProvider(imgs), &out, nil); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
