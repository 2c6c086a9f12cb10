package pixstore

import "testing"

func TestSideFor(t *testing.T) {
	cases := map[int]int{
		0: 0, 1: 1, 2: 2, 3: 2, 4: 2, 5: 3, 9: 3, 10: 4, 16: 4, 17: 5,
		100_000_000: 10000,
	}
	for n, want := range cases {
		if got := SideFor(n); got != want {
			t.Fatalf("SideFor(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestBuildImageLayout(t *testing.T) {
	pixels := []Pixel{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}, {10, 11, 12}, {13, 14, 15}}
	img := BuildImage(pixels)
	if img.Rect.Dx() != 3 || img.Rect.Dy() != 3 {
		t.Fatalf("5 pixels: grid %dx%d, want 3x3", img.Rect.Dx(), img.Rect.Dy())
	}
	for i, want := range pixels {
		if got := PixelAt(img, i); got != want {
			t.Fatalf("slot %d = %v, want %v", i, got, want)
		}
	}
	// Trailing cells are white sentinel.
	for i := len(pixels); i < 9; i++ {
		if got := PixelAt(img, i); got != (Pixel{255, 255, 255}) {
			t.Fatalf("padding slot %d = %v, want white", i, got)
		}
	}
	// Every cell is opaque.
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 255 {
			t.Fatalf("alpha at %d = %d, want 255", i, img.Pix[i])
		}
	}
}

func TestBuildImageRowMajor(t *testing.T) {
	pixels := make([]Pixel, 4)
	for i := range pixels {
		pixels[i] = Pixel{uint8(i), uint8(i), uint8(i)}
	}
	img := BuildImage(pixels)
	// Slot 3 of a 2x2 grid lives at row 1, col 1.
	off := 1*img.Stride + 1*4
	if img.Pix[off] != 3 {
		t.Fatalf("slot 3 not at (1,1): found %d", img.Pix[off])
	}
}
