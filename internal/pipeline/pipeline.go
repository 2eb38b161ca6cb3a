// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs one catalog extraction from a PDF to a payload file.
// The run is a single linear pass: validate the input, read page lines,
// segment them into drafts, extract page images, assign images to drafts,
// build the records, and write the payload.
package pipeline

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pdiddy/catalog-extractor/internal/payload"
	"github.com/pdiddy/catalog-extractor/internal/pdf"
	"github.com/pdiddy/catalog-extractor/internal/segment"
	"github.com/pdiddy/catalog-extractor/pkg/types"
)

var (
	// ErrInputNotFound reports an input path that names no file.
	ErrInputNotFound = errors.New("input PDF not found")

	// ErrNoProducts reports that segmentation produced no drafts.
	ErrNoProducts = errors.New("no products were detected in the PDF; adjust parsing heuristics")
)

const (
	// outputSuffix replaces the input extension in the default output path.
	outputSuffix = ".generated.json"
	// imagesDir is the directory under the output's parent holding images.
	imagesDir = "images"
)

// Result summarizes a completed run.
type Result struct {
	OutputPath string
	ImageDir   string
	Pages      int
	Drafts     int
	Products   int
}

// Pipeline wires the collaborators of an extraction run.
type Pipeline struct {
	lines     pdf.LineSource
	images    pdf.ImageExtractor
	segmenter *segment.Segmenter
	log       zerolog.Logger
}

// New returns a Pipeline reading text from lines and page images from images.
func New(lines pdf.LineSource, images pdf.ImageExtractor, log zerolog.Logger) *Pipeline {
	return &Pipeline{
		lines:     lines,
		images:    images,
		segmenter: segment.NewSegmenter(log),
		log:       log.With().Str("component", "pipeline").Logger(),
	}
}

// DefaultOutputPath returns the payload path used when none is configured:
// the input path with its extension replaced by ".generated.json".
func DefaultOutputPath(inputPath string) string {
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + outputSuffix
}

// DefaultImageDir returns images/<input-stem> under the output's parent.
func DefaultImageDir(inputPath, outputPath string) string {
	return filepath.Join(filepath.Dir(outputPath), imagesDir, pdf.Stem(inputPath))
}

// Run executes one extraction for cfg. It returns ErrInputNotFound when the
// input file does not exist, an error wrapping pdf.ErrInvalidInput when it
// exists but is not a usable PDF, and ErrNoProducts when no drafts were
// detected; in the latter case no images are extracted and no payload is
// written.
func (p *Pipeline) Run(cfg types.ExtractConfig) (Result, error) {
	if err := pdf.ValidatePath(cfg.InputPath); err != nil {
		if errors.Is(err, pdf.ErrNotFound) {
			return Result{}, fmt.Errorf("%w: %s", ErrInputNotFound, cfg.InputPath)
		}
		return Result{}, fmt.Errorf("validating input: %w", err)
	}

	inputPath, err := filepath.Abs(cfg.InputPath)
	if err != nil {
		return Result{}, fmt.Errorf("resolving input path: %w", err)
	}
	outputPath, imageDir, err := resolvePaths(inputPath, cfg)
	if err != nil {
		return Result{}, err
	}
	result := Result{OutputPath: outputPath, ImageDir: imageDir}

	p.log.Info().Str("pdf", inputPath).Msg("reading PDF")
	pages, err := p.lines.PageLines(inputPath)
	if err != nil {
		return result, fmt.Errorf("reading text lines: %w", err)
	}
	result.Pages = len(pages)
	p.log.Info().Int("pages", result.Pages).Msg("read page text")

	drafts := p.segmenter.Segment(pages)
	result.Drafts = len(drafts)
	if len(drafts) == 0 {
		return result, ErrNoProducts
	}

	p.log.Info().Str("dir", imageDir).Msg("extracting page images")
	pageImages, err := p.images.ExtractImages(inputPath, imageDir)
	if err != nil {
		return result, fmt.Errorf("extracting images: %w", err)
	}
	relativize(pageImages, cfg.BaseDir)

	builder := payload.NewBuilder(cfg.PublicPrefix, cfg.Catalog, p.log)
	products := builder.Build(drafts, payload.AssignImages(drafts, pageImages))
	result.Products = len(products)

	doc := types.Payload{Items: products, Source: filepath.Base(inputPath)}
	if err := payload.WriteFile(outputPath, doc); err != nil {
		return result, err
	}

	p.log.Info().Int("products", result.Products).Str("path", outputPath).Msg("written products")
	p.log.Info().Msg("review the output and adjust parsing rules if needed")
	return result, nil
}

func resolvePaths(inputPath string, cfg types.ExtractConfig) (outputPath, imageDir string, err error) {
	outputPath = DefaultOutputPath(inputPath)
	if cfg.OutputPath != "" {
		if outputPath, err = filepath.Abs(cfg.OutputPath); err != nil {
			return "", "", fmt.Errorf("resolving output path: %w", err)
		}
	}

	imageDir = DefaultImageDir(inputPath, outputPath)
	if cfg.ImageDir != "" {
		if imageDir, err = filepath.Abs(cfg.ImageDir); err != nil {
			return "", "", fmt.Errorf("resolving image directory: %w", err)
		}
	}
	return outputPath, imageDir, nil
}

// relativize rewrites image paths located under baseDir relative to it.
// Paths outside baseDir are left unchanged.
func relativize(pages types.PageImages, baseDir string) {
	if baseDir == "" {
		return
	}
	base, err := filepath.Abs(baseDir)
	if err != nil {
		return
	}
	for page, paths := range pages {
		for i, path := range paths {
			pages[page][i] = relativeTo(base, path)
		}
	}
}

func relativeTo(base, path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(base, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}
