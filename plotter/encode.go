package plotter

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sergeymakinen/go-bmp"
)

// EncodePNG encodes img as PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	err := png.Encode(&buf, img)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeBMP encodes img as BMP bytes.
func EncodeBMP(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	err := bmp.Encode(&buf, img)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeBase64PNG returns img as a base64 encoded PNG, the form handed to the
// browser.
func EncodeBase64PNG(img image.Image) (string, error) {
	data, err := EncodePNG(img)
	if err != nil {
		return "", fmt.Errorf("failed to encode image to PNG: %w", err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// Encode writes img to w in the named format ("png" or "bmp").
func Encode(w io.Writer, img image.Image, format string) error {
	switch strings.ToLower(format) {
	case "", "png":
		return png.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	}
	return fmt.Errorf("unsupported image format %q", format)
}

// FormatFromPath picks the image format from a file extension.
func FormatFromPath(path string) (string, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "png", "bmp":
		return ext, nil
	}
	return "", fmt.Errorf("cannot infer image format from %q (use .png or .bmp)", path)
}

// WriteImage writes img to path, choosing the format from the extension.
func WriteImage(path string, img image.Image) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := Encode(f, img, format); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
