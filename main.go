package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/pixstore/pixstore/pixstore"
	"github.com/pixstore/pixstore/utils"
)

func usage() {
	fmt.Println("Usage: pixstore <command> [args]")
	fmt.Println("Commands:")
	fmt.Println("  encode [-y] <file> [output_dir] [max_pixels]   (convert a file into a PNG series)")
	fmt.Println("  decode <image.png | directory>                 (reconstruct original file(s) from a series)")
	fmt.Println("  info <image.png>                               (print the metadata a series promises)")
	fmt.Println("  gennoise <min_bytes> <max_bytes> <amount> <output_dir>   (generate random payload files)")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "encode":
		args := os.Args[2:]
		yes := false
		if len(args) > 0 && args[0] == "-y" {
			yes = true
			args = args[1:]
		}
		if len(args) < 1 || len(args) > 3 {
			usage()
			os.Exit(1)
		}
		outDir := ""
		maxPixels := uint64(pixstore.DefaultMaxPixels)
		if len(args) >= 2 {
			outDir = args[1]
		}
		if len(args) == 3 {
			if _, err := fmt.Sscan(args[2], &maxPixels); err != nil {
				fmt.Println("Error:", err)
				os.Exit(1)
			}
		}
		if err := runEncode(args[0], outDir, maxPixels, yes); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
	case "decode":
		if len(os.Args) != 3 {
			usage()
			os.Exit(1)
		}
		if err := runDecode(os.Args[2]); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
	case "info":
		if len(os.Args) != 3 {
			usage()
			os.Exit(1)
		}
		if err := utils.RunSeriesInfo(os.Args[2]); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
	case "gennoise":
		if len(os.Args) != 6 {
			usage()
			os.Exit(1)
		}
		var minB, maxB uint64
		var amount int
		if _, err := fmt.Sscan(os.Args[2], &minB); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		if _, err := fmt.Sscan(os.Args[3], &maxB); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		if _, err := fmt.Sscan(os.Args[4], &amount); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		if err := utils.RunGenerateNoise(minB, maxB, amount, os.Args[5]); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
	default:
		usage()
		os.Exit(1)
	}

	fmt.Println("Operation completed!")
}

// runEncode prints the partition plan and asks for confirmation before
// any image is generated; -y skips the prompt.
func runEncode(input, outDir string, maxPixels uint64, yes bool) error {
	fi, err := os.Stat(input)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", pixstore.ErrNotFound, input)
		}
		return err
	}
	plan, err := pixstore.NewPlan(uint64(fi.Size()), maxPixels)
	if err != nil {
		return err
	}

	fmt.Printf("File: %s (%s)\n", input, utils.FormatSize(uint64(fi.Size())))
	fmt.Printf("Complete pixels: %d, extra bits: %d\n", plan.CompletePixels, plan.ExtraBits)
	fmt.Printf("Total pixels: %d (header: %d), images: %d\n", plan.TotalPixels, pixstore.HeaderPixels, plan.NumImages)
	if !yes && !confirm("Proceed? (y/n): ") {
		return fmt.Errorf("operation cancelled")
	}

	res, err := utils.RunEncodeFile(input, outDir, maxPixels)
	if err != nil {
		return err
	}
	fmt.Printf("Images generated: %d, payload xxh64=%016x\n", len(res.Files), res.Digest)
	for _, f := range res.Files {
		fmt.Println("  -", f)
	}
	return nil
}

func runDecode(path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", pixstore.ErrNotFound, path)
		}
		return err
	}
	if fi.IsDir() {
		results, err := utils.RunDecodeDir(path)
		done, skipped := 0, 0
		for _, r := range results {
			if r.Skipped {
				skipped++
			} else {
				done++
			}
		}
		fmt.Printf("Files reconstructed: %d (skipped: %d)\n", done, skipped)
		return err
	}

	res, err := utils.RunDecodeImage(path)
	if err != nil {
		return err
	}
	if res.Skipped {
		fmt.Printf("%s already exists, skipping\n", res.OutputPath)
		return nil
	}
	fmt.Printf("Reconstructed %s (%s) xxh64=%016x\n", res.OutputPath, utils.FormatSize(res.Summary.BytesWritten), res.Digest)
	return nil
}

func confirm(prompt string) bool {
	fmt.Print(prompt)
	sc := bufio.NewScanner(os.Stdin)
	if !sc.Scan() {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(sc.Text()), "y")
}
