package pixstore

import (
	"reflect"
	"testing"
)

func TestAppendPixels(t *testing.T) {
	cases := []struct {
		src  []byte
		want []Pixel
	}{
		{nil, nil},
		{[]byte{0xAB}, []Pixel{{0xAB, 0, 0}}},
		{[]byte{0xAB, 0xCD}, []Pixel{{0xAB, 0xCD, 0}}},
		{[]byte{1, 2, 3}, []Pixel{{1, 2, 3}}},
		{[]byte{1, 2, 3, 4}, []Pixel{{1, 2, 3}, {4, 0, 0}}},
		{[]byte{1, 2, 3, 4, 5}, []Pixel{{1, 2, 3}, {4, 5, 0}}},
		{[]byte{1, 2, 3, 4, 5, 6}, []Pixel{{1, 2, 3}, {4, 5, 6}}},
	}
	for _, c := range cases {
		got := AppendPixels(nil, c.src)
		if !reflect.DeepEqual(got, c.want) {
			t.Fatalf("AppendPixels(%v) = %v, want %v", c.src, got, c.want)
		}
	}
}

func TestAppendPixelsKeepsPrefix(t *testing.T) {
	prefix := []Pixel{{9, 9, 9}}
	got := AppendPixels(prefix, []byte{1, 2, 3})
	want := []Pixel{{9, 9, 9}, {1, 2, 3}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestResidualBytes(t *testing.T) {
	for extra, want := range map[uint8]int{0: 0, 8: 1, 16: 2} {
		if got := residualBytes(extra); got != want {
			t.Fatalf("residualBytes(%d) = %d, want %d", extra, got, want)
		}
	}
}
