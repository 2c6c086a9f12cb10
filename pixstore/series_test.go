package pixstore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestImageName(t *testing.T) {
	if got := ImageName("report", 1, "pdf"); got != "report_001_pdf.png" {
		t.Fatalf("got %q", got)
	}
	// The index field widens past 999 instead of truncating.
	if got := ImageName("report", 1000, "pdf"); got != "report_1000_pdf.png" {
		t.Fatalf("got %q", got)
	}
}

func TestParseImageName(t *testing.T) {
	key, idx, err := ParseImageName("my_data_012_txt.png")
	if err != nil {
		t.Fatal(err)
	}
	if key.Base != "my_data" || key.Ext != "txt" || idx != 12 {
		t.Fatalf("got %+v index %d", key, idx)
	}

	key, idx, err = ParseImageName("big_1234_bin.png")
	if err != nil {
		t.Fatal(err)
	}
	if key.Base != "big" || idx != 1234 {
		t.Fatalf("wide index: got %+v index %d", key, idx)
	}

	for _, bad := range []string{
		"noindex.png", "data_12_txt.png", "data_001_txt.jpg",
		"data_000_txt.png", "_001_txt.png",
	} {
		if _, _, err := ParseImageName(bad); !errors.Is(err, ErrFormat) {
			t.Fatalf("%q: got %v, want ErrFormat", bad, err)
		}
	}
}

func TestSplitSource(t *testing.T) {
	base, ext := SplitSource("/tmp/archive.tar")
	if base != "archive" || ext != "tar" {
		t.Fatalf("got %q %q", base, ext)
	}
	base, ext = SplitSource("/tmp/Makefile")
	if base != "Makefile" || ext != DefaultExt {
		t.Fatalf("no extension: got %q %q", base, ext)
	}
}

func TestFindSeriesGroupsAndOrders(t *testing.T) {
	dir := t.TempDir()
	names := []string{
		"a_010_txt.png", "a_002_txt.png", "a_001_txt.png",
		"b_001_bin.png",
		"ignored.txt", "also_ignored.png",
	}
	for _, n := range names {
		if err := os.WriteFile(filepath.Join(dir, n), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	groups, err := FindSeries(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(groups) != 2 {
		t.Fatalf("got %d series, want 2", len(groups))
	}
	a := groups[SeriesKey{Base: "a", Ext: "txt"}]
	if len(a) != 3 {
		t.Fatalf("series a: %d images", len(a))
	}
	for i, want := range []int{1, 2, 10} {
		if a[i].Index != want {
			t.Fatalf("series a order: got %d at %d, want %d", a[i].Index, i, want)
		}
	}
}

func TestSeriesForMissingDir(t *testing.T) {
	_, _, err := SeriesFor(filepath.Join("no", "such", "dir", "a_001_txt.png"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestCheckContiguous(t *testing.T) {
	ok := []SeriesImage{{Index: 1}, {Index: 2}, {Index: 3}}
	if err := CheckContiguous(ok); err != nil {
		t.Fatal(err)
	}
	gap := []SeriesImage{{Index: 1}, {Index: 3}}
	if err := CheckContiguous(gap); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("gap: got %v, want ErrCorrupt", err)
	}
	late := []SeriesImage{{Index: 2}, {Index: 3}}
	if err := CheckContiguous(late); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("missing first: got %v, want ErrCorrupt", err)
	}
	dup := []SeriesImage{{Index: 1}, {Index: 1}, {Index: 2}}
	if err := CheckContiguous(dup); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("duplicate: got %v, want ErrCorrupt", err)
	}
}
