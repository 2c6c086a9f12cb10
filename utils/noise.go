package utils

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"
)

// RunGenerateNoise writes amount files of random bytes into outDir, named
// noise_0.bin .. noise_(amount-1).bin, each sized uniformly in
// [minSize, maxSize]. Handy for exercising the codec with arbitrary
// content and boundary lengths.
func RunGenerateNoise(minSize, maxSize uint64, amount int, outDir string) error {
	if amount < 0 {
		amount = 0
	}
	if outDir == "" {
		outDir = "."
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	if maxSize < minSize {
		minSize, maxSize = maxSize, minSize
	}

	// Seed once and derive per-file seeds deterministically.
	baseSeed := uint64(time.Now().UnixNano())
	for i := 0; i < amount; i++ {
		const weyl = uint64(0x9e3779b97f4a7c15)
		seed := baseSeed ^ (uint64(i)+1)*weyl
		r := rand.New(rand.NewSource(int64(seed & 0x7fffffffffffffff)))

		size := minSize
		if maxSize > minSize {
			size = minSize + uint64(r.Int63n(int64(maxSize-minSize+1)))
		}
		data := make([]byte, size)
		if _, err := r.Read(data); err != nil {
			return err
		}
		path := filepath.Join(outDir, fmt.Sprintf("noise_%d.bin", i))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	return nil
}
