// Package images downsamples oversized recipe photos in place so the
// published site never ships multi-megabyte originals.
package images

import (
	"fmt"
	"image"
	"image/jpeg"
	"math"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
)

// Config carries the resize command's environment-driven defaults.
type Config struct {
	ImagesDir string `env:"RECIPEKIT_IMAGES_DIR" envDefault:"recipes/assets/images"`
	MaxDim    int    `env:"RECIPEKIT_MAX_DIM" envDefault:"1600"`
	Quality   int    `env:"RECIPEKIT_QUALITY" envDefault:"85"`
}

// Resized reports one rewritten file.
type Resized struct {
	Name      string
	OldWidth  int
	OldHeight int
	NewWidth  int
	NewHeight int
}

// Resize walks every .jpg in dir (sorted by name), downsamples any whose
// width or height exceeds maxDim while preserving aspect ratio, and
// rewrites it in place at the given JPEG quality. Images already within
// bounds are left untouched.
func Resize(dir string, maxDim, quality int) ([]Resized, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("image directory not found: %s", dir)
	}

	paths, err := filepath.Glob(filepath.Join(dir, "*.jpg"))
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}

	var processed []Resized
	for _, path := range paths {
		entry, err := resizeFile(path, maxDim, quality)
		if err != nil {
			return processed, fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
		if entry != nil {
			processed = append(processed, *entry)
		}
	}

	return processed, nil
}

// resizeFile returns nil, nil when the image is already within bounds.
func resizeFile(path string, maxDim, quality int) (*Resized, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	src, err := jpeg.Decode(in)
	in.Close()
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= maxDim && height <= maxDim {
		return nil, nil
	}

	ratio := math.Min(float64(maxDim)/float64(width), float64(maxDim)/float64(height))
	newWidth := max(1, int(math.Round(float64(width)*ratio)))
	newHeight := max(1, int(math.Round(float64(height)*ratio)))

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	out, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	defer out.Close()

	if err := jpeg.Encode(out, dst, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	if err := out.Close(); err != nil {
		return nil, err
	}

	return &Resized{
		Name:      filepath.Base(path),
		OldWidth:  width,
		OldHeight: height,
		NewWidth:  newWidth,
		NewHeight: newHeight,
	}, nil
}
