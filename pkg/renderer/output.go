package renderer

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnsupportedFormat is returned for image formats the encoder does not know
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Formats lists the supported output formats
var Formats = []string{"png", "jpeg", "bmp", "tiff"}

// NormalizeFormat maps a format name or file extension to one of Formats
func NormalizeFormat(format string) (string, error) {
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "png", "":
		return "png", nil
	case "jpeg", "jpg":
		return "jpeg", nil
	case "bmp":
		return "bmp", nil
	case "tiff", "tif":
		return "tiff", nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// ContentType returns the MIME type of a normalized format
func ContentType(format string) string {
	return "image/" + format
}

// EncodeImage writes img to w in the given format
func EncodeImage(w io.Writer, format string, img image.Image) error {
	format, err := NormalizeFormat(format)
	if err != nil {
		return err
	}

	switch format {
	case "jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
	case "bmp":
		return bmp.Encode(w, img)
	case "tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return png.Encode(w, img)
	}
}

// SaveImage writes img to path, choosing the format from the file extension
// and creating missing directories
func SaveImage(path string, img image.Image) error {
	format, err := NormalizeFormat(filepath.Ext(path))
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}

	if err := EncodeImage(file, format, img); err != nil {
		file.Close()
		return fmt.Errorf("error encoding %s: %w", format, err)
	}
	return file.Close()
}
