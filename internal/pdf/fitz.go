// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdf

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gen2brain/go-fitz"
	"github.com/rs/zerolog"

	"github.com/pdiddy/catalog-extractor/pkg/types"
)

// FitzSource reads page text through MuPDF.
type FitzSource struct{}

// NewFitzSource returns a FitzSource.
func NewFitzSource() *FitzSource {
	return &FitzSource{}
}

// PageLines implements LineSource.
func (s *FitzSource) PageLines(pdfPath string) ([][]string, error) {
	doc, err := fitz.New(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("opening PDF %s: %w", pdfPath, err)
	}
	defer doc.Close()

	n := doc.NumPage()
	pages := make([][]string, n)
	for i := 0; i < n; i++ {
		text, err := doc.Text(i)
		if err != nil {
			return nil, fmt.Errorf("reading text of page %d: %w", i+1, err)
		}
		pages[i] = SplitLines(text)
	}
	return pages, nil
}

// RasterExtractor renders every page to a single PNG at DPI. It suits
// catalogs whose product photos are drawn as vector art or split into many
// image tiles.
type RasterExtractor struct {
	DPI      int
	Progress ProgressFunc
	log      zerolog.Logger
}

// ExtractImages implements ImageExtractor.
func (e *RasterExtractor) ExtractImages(pdfPath, outDir string) (types.PageImages, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating image directory: %w", err)
	}

	doc, err := fitz.New(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("opening PDF %s: %w", pdfPath, err)
	}
	defer doc.Close()

	stem := Stem(pdfPath)
	n := doc.NumPage()
	pages := make(types.PageImages)
	for i := 0; i < n; i++ {
		img, err := doc.ImageDPI(i, float64(e.DPI))
		if err != nil {
			e.log.Warn().Int("page", i+1).Err(err).Msg("skipping page that failed to render")
		} else {
			path := filepath.Join(outDir, ImageName(stem, i, 1))
			if err := writePNG(path, img); err != nil {
				e.log.Warn().Int("page", i+1).Err(err).Msg("skipping page image that failed to write")
			} else {
				pages[i] = []string{path}
			}
		}
		if e.Progress != nil {
			e.Progress(i+1, n)
		}
	}
	return pages, nil
}
