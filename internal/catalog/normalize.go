// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/pdiddy/catalog-extractor/pkg/types"
)

const (
	// PlaceholderImage is used for records that carry no image at all.
	PlaceholderImage = "https://via.placeholder.com/800x600?text=Product"

	// placeholderDescription is the description of records with no text.
	placeholderDescription = "Product details will be updated soon."
)

var numberRe = regexp.MustCompile(`[0-9]+(?:\.[0-9]+)?`)

// ExtractPrice returns the largest positive number found in the first input
// that contains one. Larger numbers are preferred because catalog text often
// mixes prices with small volume or quantity figures.
func ExtractPrice(inputs ...string) (float64, bool) {
	for _, input := range inputs {
		var best float64
		for _, m := range numberRe.FindAllString(input, -1) {
			v, err := strconv.ParseFloat(m, 64)
			if err == nil && v > best {
				best = v
			}
		}
		if best > 0 {
			return best, true
		}
	}
	return 0, false
}

// Normalize fills the gaps of an extracted record before it is stored.
// It reports false for records without a name, which cannot be keyed.
func Normalize(p types.Product, dimensionsLabel string) (types.Product, bool) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return p, false
	}

	dims := deref(p.Dimensions)

	if p.Price == nil || *p.Price <= 0 {
		p.Price = nil
		if v, ok := ExtractPrice(deref(p.PriceText), p.Description, p.FullDescription, dims); ok {
			p.Price = &v
		}
	}

	p.Description = firstNonEmpty(p.Description, p.FullDescription, dims, placeholderDescription)
	p.FullDescription = firstNonEmpty(p.FullDescription, p.Description)

	p.Image = firstNonEmpty(p.Image, p.ImageURL, firstNonEmpty(p.Images...), PlaceholderImage)
	p.ImageURL = firstNonEmpty(p.ImageURL, p.Image)
	p.Images = nonEmpty(p.Images)
	if len(p.Images) == 0 {
		p.Images = []string{p.Image}
	}

	specs := make(map[string]string, len(p.Specs)+1)
	for k, v := range p.Specs {
		specs[k] = v
	}
	p.Specs = specs
	p.Features = append([]string{}, p.Features...)
	if dims != "" {
		if _, ok := p.Specs["dimensions"]; !ok {
			if _, ok := p.Specs["Dimensions"]; !ok {
				p.Specs["dimensions"] = dims
			}
		}
		feature := fmt.Sprintf("%s: %s", dimensionsLabel, dims)
		if !slices.Contains(p.Features, feature) {
			p.Features = append(p.Features, feature)
		}
	}
	return p, true
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
