package pixstore

import (
	"errors"
	"testing"
)

func TestHeaderRoundTrip(t *testing.T) {
	cases := []struct {
		complete uint64
		extra    uint8
	}{
		{0, 0},
		{0, 16},
		{1, 0},
		{1, 8},
		{333, 16},
		{0x123456789ABC, 8},
		{1<<64 - 1, 0},
	}
	for _, c := range cases {
		px := EncodeHeader(c.complete, c.extra)
		complete, extra, err := DecodeHeader(px[:])
		if err != nil {
			t.Fatalf("decode (%d,%d): %v", c.complete, c.extra, err)
		}
		if complete != c.complete || extra != c.extra {
			t.Fatalf("round trip (%d,%d) gave (%d,%d)", c.complete, c.extra, complete, extra)
		}
	}
}

func TestHeaderLayout(t *testing.T) {
	px := EncodeHeader(0, 16)
	for i := 0; i < 4; i++ {
		if px[i] != (Pixel{0, 0, 0}) {
			t.Fatalf("count pixel %d not zero: %v", i, px[i])
		}
	}
	if px[4] != (Pixel{0, 0, 16}) {
		t.Fatalf("extra-bits pixel = %v, want (0,0,16)", px[4])
	}

	// Big-endian: the low byte of the count lands in the blue channel of
	// pixel 3.
	px = EncodeHeader(0x0102, 0)
	if px[3] != (Pixel{0, 1, 2}) {
		t.Fatalf("count pixel 3 = %v, want (0,1,2)", px[3])
	}
}

func TestDecodeHeaderErrors(t *testing.T) {
	short := make([]Pixel, HeaderPixels-1)
	if _, _, err := DecodeHeader(short); !errors.Is(err, ErrFormat) {
		t.Fatalf("short header: got %v, want ErrFormat", err)
	}

	bad := EncodeHeader(42, 0)
	bad[4][2] = 5
	if _, _, err := DecodeHeader(bad[:]); !errors.Is(err, ErrFormat) {
		t.Fatalf("extra bits 5: got %v, want ErrFormat", err)
	}
	bad[4][2] = 24
	if _, _, err := DecodeHeader(bad[:]); !errors.Is(err, ErrFormat) {
		t.Fatalf("extra bits 24: got %v, want ErrFormat", err)
	}

	huge := EncodeHeader(7, 0)
	huge[0][0] = 1 // count beyond uint64
	if _, _, err := DecodeHeader(huge[:]); !errors.Is(err, ErrFormat) {
		t.Fatalf("oversized count: got %v, want ErrFormat", err)
	}
}
