// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package payload assigns page images to product drafts, renders drafts into
// catalog records, and reads and writes the resulting payload file.
package payload

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pdiddy/catalog-extractor/pkg/types"
)

// DefaultPublicPrefix is the asset directory whose files are served from "/".
const DefaultPublicPrefix = "public/"

// Builder renders finalized drafts into payload records.
type Builder struct {
	publicPrefix string
	defaults     types.CatalogDefaults
	log          zerolog.Logger
}

// NewBuilder returns a Builder. An empty publicPrefix disables prefix
// stripping; image paths are still made absolute.
func NewBuilder(publicPrefix string, defaults types.CatalogDefaults, log zerolog.Logger) *Builder {
	return &Builder{
		publicPrefix: strings.ReplaceAll(publicPrefix, `\`, "/"),
		defaults:     defaults,
		log:          log.With().Str("component", "payload").Logger(),
	}
}

// Build renders every draft whose assigned image list is non-empty.
// assigned must be aligned with drafts (see AssignImages). Drafts without
// images are left out of the result.
func (b *Builder) Build(drafts []*types.ProductDraft, assigned [][]string) []types.Product {
	products := make([]types.Product, 0, len(drafts))
	for i, d := range drafts {
		var raw []string
		if i < len(assigned) {
			raw = assigned[i]
		}

		images := make([]string, 0, len(raw))
		for _, p := range raw {
			images = append(images, NormalizeImagePath(p, b.publicPrefix))
		}

		if len(images) == 0 {
			b.log.Debug().Str("product", d.Name).Int("page", d.PageIndex+1).Msg("skipping product without images")
			continue
		}

		products = append(products, b.Record(d, images))
	}
	return products
}

// Record renders one draft with its normalized images.
func (b *Builder) Record(d *types.ProductDraft, images []string) types.Product {
	var descLines, notes []string
	for _, line := range d.RawLines {
		if strings.HasSuffix(line, ":") {
			notes = append(notes, line)
		} else {
			descLines = append(descLines, line)
		}
	}

	dimsLine := ""
	if d.HasDimensions() {
		dimsLine = fmt.Sprintf("%s: %s", b.defaults.DimensionsLabel, d.Dimensions)
	}

	description := strings.TrimSpace(strings.Join(descLines, "\n"))
	if description == "" && dimsLine != "" {
		description = dimsLine
	}

	var full []string
	if description != "" {
		full = append(full, description)
	}
	if dimsLine != "" && !mentionsLabel(description, b.defaults.DimensionsLabel) {
		full = append(full, dimsLine)
	}
	full = append(full, notes...)

	features := append([]string{}, d.Features...)
	if len(features) == 0 && d.HasDimensions() {
		features = append(features, "Dimensions: "+d.Dimensions)
	}

	specs := make(map[string]string, len(d.Specs))
	for k, v := range d.Specs {
		specs[k] = v
	}

	cover := ""
	if len(images) > 0 {
		cover = images[0]
	}

	return types.Product{
		Name:            d.Name,
		Description:     description,
		FullDescription: strings.TrimSpace(strings.Join(full, "\n")),
		Features:        features,
		Specs:           specs,
		Dimensions:      optional(d.Dimensions),
		Price:           nil,
		PriceText:       optional(d.PriceText),
		SourcePage:      d.PageIndex + 1,
		Images:          images,
		Image:           cover,
		ImageURL:        cover,
		VideoURL:        "",
		Category:        b.defaults.Category,
		InStock:         true,
		StockCount:      0,
		Rating:          b.defaults.Rating,
		Reviews:         0,
		Active:          true,
	}
}

// NormalizeImagePath turns a file path into a site-absolute URL path:
// separators become "/", a leading publicPrefix is replaced by "/", and any
// other relative path gets a leading "/".
func NormalizeImagePath(path, publicPrefix string) string {
	p := strings.ReplaceAll(path, `\`, "/")
	if publicPrefix != "" && strings.HasPrefix(p, publicPrefix) {
		return "/" + p[len(publicPrefix):]
	}
	if !strings.HasPrefix(p, "/") {
		return "/" + p
	}
	return p
}

func mentionsLabel(description, label string) bool {
	if label == "" {
		return false
	}
	return strings.Contains(strings.ToLower(description), strings.ToLower(label))
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
