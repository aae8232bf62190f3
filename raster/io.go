package raster

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

// ImageExtensions lists the file extensions Open can decode, without dots.
var ImageExtensions = []string{"png", "jpg", "jpeg", "gif", "bmp", "tif", "tiff", "webp"}

// IsImagePath reports whether path has one of ImageExtensions.
func IsImagePath(path string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	return slices.Contains(ImageExtensions, ext)
}

// Open decodes the image at path into NRGBA, honouring EXIF orientation.
func Open(path string) (*image.NRGBA, error) {
	if !IsImagePath(path) {
		return nil, fmt.Errorf("raster: open %s: unsupported extension", path)
	}
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("raster: open %s: %w", path, err)
	}
	return imaging.Clone(img), nil
}

// Save encodes img to path. The format follows the extension.
func Save(path string, img image.Image) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("raster: save %s: %w", path, err)
	}
	return nil
}

// Decode reads an image in any registered format into NRGBA.
func Decode(r io.Reader) (*image.NRGBA, error) {
	img, err := imaging.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("raster: decode: %w", err)
	}
	return imaging.Clone(img), nil
}

// EncodePNG returns img as PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("raster: encode png: %w", err)
	}
	return buf.Bytes(), nil
}
