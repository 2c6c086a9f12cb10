package pixstore

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Image files are named {base}_{NNN}_{ext}.png with a 1-based sequence
// index zero-padded to at least three digits. The writer widens past 999
// automatically and the reader orders by numeric index, so a series is not
// capped by the field width.
var imageNameRe = regexp.MustCompile(`^(.+)_(\d{3,})_([A-Za-z0-9]+)\.png$`)

// DefaultExt stands in for source files that have no extension.
const DefaultExt = "bin"

// SeriesKey identifies one logical file among the images of a directory.
type SeriesKey struct {
	Base string
	Ext  string
}

// OutputName is the reconstructed file name for the series.
func (k SeriesKey) OutputName() string {
	return k.Base + "." + k.Ext
}

// SeriesImage is one image unit on disk.
type SeriesImage struct {
	Path  string
	Index int // 1-based sequence position
}

// ImageName builds the file name of image unit index of a series.
func ImageName(base string, index int, ext string) string {
	return fmt.Sprintf("%s_%03d_%s.png", base, index, ext)
}

// ParseImageName splits an image file name into its series key and index.
func ParseImageName(name string) (SeriesKey, int, error) {
	m := imageNameRe.FindStringSubmatch(name)
	if m == nil {
		return SeriesKey{}, 0, fmt.Errorf("%w: %q does not match base_NNN_ext.png", ErrFormat, name)
	}
	idx, err := strconv.Atoi(m[2])
	if err != nil || idx < 1 {
		return SeriesKey{}, 0, fmt.Errorf("%w: bad sequence index in %q", ErrFormat, name)
	}
	return SeriesKey{Base: m[1], Ext: m[3]}, idx, nil
}

// SplitSource derives the series base and extension token from a source
// file path, defaulting the extension to DefaultExt.
func SplitSource(path string) (base, ext string) {
	name := filepath.Base(path)
	e := filepath.Ext(name)
	base = strings.TrimSuffix(name, e)
	ext = strings.TrimPrefix(e, ".")
	if ext == "" {
		ext = DefaultExt
	}
	return base, ext
}

// FindSeries scans a directory and groups its images into series, each
// sorted by numeric index. Files outside the naming convention are
// ignored.
func FindSeries(dir string) (map[SeriesKey][]SeriesImage, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, dir)
		}
		return nil, err
	}
	groups := make(map[SeriesKey][]SeriesImage)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		key, idx, err := ParseImageName(e.Name())
		if err != nil {
			continue
		}
		groups[key] = append(groups[key], SeriesImage{Path: filepath.Join(dir, e.Name()), Index: idx})
	}
	for key, imgs := range groups {
		sort.Slice(imgs, func(i, j int) bool { return imgs[i].Index < imgs[j].Index })
		groups[key] = imgs
	}
	return groups, nil
}

// SeriesFor resolves the full series that one image file belongs to by
// scanning its directory for siblings with the same base and extension.
func SeriesFor(imagePath string) (SeriesKey, []SeriesImage, error) {
	key, _, err := ParseImageName(filepath.Base(imagePath))
	if err != nil {
		return SeriesKey{}, nil, err
	}
	dir := filepath.Dir(imagePath)
	groups, err := FindSeries(dir)
	if err != nil {
		return SeriesKey{}, nil, err
	}
	imgs := groups[key]
	if len(imgs) == 0 {
		return key, nil, fmt.Errorf("%w: no images for series %s in %s", ErrNotFound, key.OutputName(), dir)
	}
	return key, imgs, nil
}

// CheckContiguous verifies the 1..N numbering of an index-sorted series.
// A gap or duplicate means image units are missing or doubled, which the
// byte counters alone cannot detect reliably.
func CheckContiguous(imgs []SeriesImage) error {
	for i, im := range imgs {
		if im.Index != i+1 {
			return fmt.Errorf("%w: expected image %d, found index %d (%s)", ErrCorrupt, i+1, im.Index, im.Path)
		}
	}
	return nil
}
