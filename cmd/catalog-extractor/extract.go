// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/pdiddy/catalog-extractor/internal/payload"
	"github.com/pdiddy/catalog-extractor/internal/pdf"
	"github.com/pdiddy/catalog-extractor/internal/pipeline"
	"github.com/pdiddy/catalog-extractor/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract <catalog.pdf>",
	Short: "Extract product records and page images from a catalog PDF",
	Long: `Extract reads the text of every page, detects product titles, and
collects each product's description, price, dimensions, specs, and bullet
features. Images embedded in each page (or the rendered pages, with
--image-backend raster) are written to the image directory and attached to
the products found on that page. Products without images are left out.

The payload is written as JSON, or as YAML when the output path ends in
.yaml or .yml. Review it before importing.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	cfg, err := extractConfig(args[0])
	if err != nil {
		return err
	}

	lines, err := pdf.NewLineSource(cfg.TextBackend, log)
	if err != nil {
		return err
	}
	progress := newPageProgress("images")
	images, err := pdf.NewImageExtractor(cfg.ImageBackend, cfg.ImageDPI, progress.Report, log)
	if err != nil {
		return err
	}

	result, err := pipeline.New(lines, images, log).Run(cfg)
	progress.Finish()
	if errors.Is(err, pipeline.ErrNoProducts) {
		warning("read %d pages but found no product titles", result.Pages)
	}
	if err != nil {
		return err
	}

	success("wrote %d of %d products to %s", result.Products, result.Drafts, result.OutputPath)
	if dropped := result.Drafts - result.Products; dropped > 0 {
		warning("%d products had no images on their page and were left out", dropped)
	}
	return nil
}

func init() {
	extractCmd.Flags().String("output-json", "", "payload path (default: <pdf>.generated.json)")
	extractCmd.Flags().String("image-dir", "", "directory for extracted images (default: images/<pdf-stem> next to the payload)")
	extractCmd.Flags().Int("image-dpi", types.DefaultImageDPI, "resolution for rendered page images")
	extractCmd.Flags().String("text-backend", string(types.TextRows), "text reader: rows or fitz")
	extractCmd.Flags().String("image-backend", string(types.ImagesEmbedded), "image source: embedded or raster")
	extractCmd.Flags().String("public-prefix", payload.DefaultPublicPrefix, "path prefix served as / (empty to keep paths as-is)")

	for flag, key := range map[string]string{
		"output-json":   "output_json",
		"image-dir":     "image_dir",
		"image-dpi":     "image_dpi",
		"text-backend":  "text_backend",
		"image-backend": "image_backend",
		"public-prefix": "public_prefix",
	} {
		bindFlag(extractCmd.Flags().Lookup(flag), key)
	}

	rootCmd.AddCommand(extractCmd)
}
