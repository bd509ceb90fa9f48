// Package filex reads local files picked by the user.
package filex

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	// Decoders registered for image.DecodeConfig.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// MaxImageSize caps the size of an image file accepted for upload.
const MaxImageSize = 20 << 20

var (
	ErrNotRegular = errors.New("not a regular file")
	ErrTooLarge   = errors.New("file too large")
	ErrNotImage   = errors.New("not an image")
)

var mimeByFormat = map[string]string{
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"webp": "image/webp",
	"bmp":  "image/bmp",
	"tiff": "image/tiff",
}

// Image is an image file read into memory.
type Image struct {
	Name        string
	ContentType string
	Format      string
	Width       int
	Height      int
	Data        []byte
}

// LoadImage reads path and checks that its bytes decode as a supported image
// format. The content type comes from the decoded format, not the extension.
func LoadImage(path string) (*Image, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: %w", path, ErrNotRegular)
	}
	if fi.Size() > MaxImageSize {
		return nil, fmt.Errorf("%s (%d bytes): %w", path, fi.Size(), ErrTooLarge)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), ErrNotImage)
	}

	ct, ok := mimeByFormat[format]
	if !ok {
		ct = "application/octet-stream"
	}

	return &Image{
		Name:        filepath.Base(path),
		ContentType: ct,
		Format:      format,
		Width:       cfg.Width,
		Height:      cfg.Height,
		Data:        data,
	}, nil
}
