// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdf reads catalog PDFs: text lines per page for segmentation and
// image files per page for the product records. Each concern has pluggable
// backends selected by configuration.
package pdf

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pdiddy/catalog-extractor/pkg/types"
)

var (
	// ErrNotFound reports an input path that names no file.
	ErrNotFound = errors.New("PDF not found")

	// ErrInvalidInput reports an existing input that cannot be processed.
	ErrInvalidInput = errors.New("invalid input")
)

// LineSource yields the text lines of a PDF grouped by page. Lines are
// trimmed and empty lines are removed; the outer slice is indexed by
// zero-based page number and has one entry per page.
type LineSource interface {
	PageLines(pdfPath string) ([][]string, error)
}

// ImageExtractor writes the images of each page into outDir and returns
// their paths keyed by zero-based page index. Pages without images are
// absent from the result.
type ImageExtractor interface {
	ExtractImages(pdfPath, outDir string) (types.PageImages, error)
}

// ProgressFunc is called after each page is processed by an extractor.
type ProgressFunc func(done, total int)

// ValidatePath checks that path names an existing, readable .pdf file.
// A missing file or empty path wraps ErrNotFound; any other problem wraps
// ErrInvalidInput.
func ValidatePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("%w: file path cannot be empty", ErrNotFound)
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return fmt.Errorf("%w: cannot access %s: %v", ErrInvalidInput, path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: path is a directory, not a file: %s", ErrInvalidInput, path)
	}
	if ext := strings.ToLower(filepath.Ext(path)); ext != ".pdf" {
		return fmt.Errorf("%w: file is not a PDF (has extension %q): %s", ErrInvalidInput, ext, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: cannot open %s: %v", ErrInvalidInput, path, err)
	}
	f.Close()
	return nil
}

// NewLineSource returns the line source for backend.
func NewLineSource(backend types.TextBackend, log zerolog.Logger) (LineSource, error) {
	switch backend {
	case "", types.TextRows:
		return NewRowSource(log), nil
	case types.TextFitz:
		return NewFitzSource(), nil
	default:
		return nil, fmt.Errorf("unknown text backend %q: use %s or %s", backend, types.TextRows, types.TextFitz)
	}
}

// NewImageExtractor returns the image extractor for backend. dpi is used by
// the raster backend only.
func NewImageExtractor(backend types.ImageBackend, dpi int, progress ProgressFunc, log zerolog.Logger) (ImageExtractor, error) {
	switch backend {
	case "", types.ImagesEmbedded:
		return &EmbeddedExtractor{Progress: progress, log: log}, nil
	case types.ImagesRaster:
		if dpi <= 0 {
			dpi = types.DefaultImageDPI
		}
		return &RasterExtractor{DPI: dpi, Progress: progress, log: log}, nil
	default:
		return nil, fmt.Errorf("unknown image backend %q: use %s or %s", backend, types.ImagesEmbedded, types.ImagesRaster)
	}
}

// SplitLines splits page text into trimmed, non-empty lines.
func SplitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// ImageName returns the file name for the index-th image (1-based) on the
// page with zero-based pageIndex of the document with the given stem.
func ImageName(stem string, pageIndex, index int) string {
	return fmt.Sprintf("%s_p%03d_img%02d.png", stem, pageIndex+1, index)
}

// Stem returns the file name of path without directory and extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
