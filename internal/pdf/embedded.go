// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdf

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"sort"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/rs/zerolog"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/pdiddy/catalog-extractor/pkg/types"
)

// EmbeddedExtractor writes every image object embedded in each page,
// re-encoded as PNG. An image that cannot be extracted, decoded, or written
// is skipped and the page's other images are still written. Image indexes
// count every image object on the page, so a skipped image leaves a gap in
// the numbering.
type EmbeddedExtractor struct {
	Progress ProgressFunc
	log      zerolog.Logger
}

// ExtractImages implements ImageExtractor.
func (e *EmbeddedExtractor) ExtractImages(pdfPath, outDir string) (types.PageImages, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating image directory: %w", err)
	}

	f, err := os.Open(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("opening PDF %s: %w", pdfPath, err)
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	ctx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		return nil, fmt.Errorf("reading PDF %s: %w", pdfPath, err)
	}

	stem := Stem(pdfPath)
	pages := make(types.PageImages)
	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		pageIndex := pageNr - 1
		paths := e.extractPage(ctx, pageNr, stem, outDir)
		if len(paths) > 0 {
			pages[pageIndex] = paths
		}
		if e.Progress != nil {
			e.Progress(pageNr, ctx.PageCount)
		}
	}
	return pages, nil
}

func (e *EmbeddedExtractor) extractPage(ctx *model.Context, pageNr int, stem, outDir string) []string {
	// Object numbers give a stable order across runs. Page thumbnails are
	// not part of the page content and are left out.
	objNrs := pdfcpu.ImageObjNrs(ctx, pageNr)
	sort.Ints(objNrs)

	var paths []string
	for i, objNr := range objNrs {
		obj, ok := ctx.Optimize.ImageObjects[objNr]
		if !ok || obj == nil {
			continue
		}
		img, err := pdfcpu.ExtractImage(ctx, obj.ImageDict, false, obj.ResourceNames[pageNr-1], objNr, false)
		if err != nil {
			e.log.Warn().Int("page", pageNr).Int("object", objNr).Err(err).Msg("skipping image that failed to extract")
			continue
		}
		if img == nil {
			e.log.Debug().Int("page", pageNr).Int("object", objNr).Msg("skipping image with unsupported filter")
			continue
		}

		path := filepath.Join(outDir, ImageName(stem, pageNr-1, i+1))
		if err := saveEmbedded(*img, path); err != nil {
			e.log.Warn().
				Int("page", pageNr).
				Int("object", objNr).
				Str("type", img.FileType).
				Err(err).
				Msg("skipping image that failed to decode")
			continue
		}
		paths = append(paths, path)
	}
	return paths
}

func saveEmbedded(img model.Image, path string) error {
	if img.Reader == nil {
		return fmt.Errorf("image %s has no data", img.Name)
	}
	decoded, _, err := image.Decode(img)
	if err != nil {
		return fmt.Errorf("decoding %s image: %w", img.FileType, err)
	}
	return writePNG(path, decoded)
}

func writePNG(path string, img image.Image) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := png.Encode(out, img); err != nil {
		out.Close()
		os.Remove(path)
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return out.Close()
}
