// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ProductDraft accumulates the lines of one detected product while the page
// scan is in progress. A draft is created when a title line is accepted and
// finalized at the next title line or at end of input.
type ProductDraft struct {
	// Name is the validated title, never empty.
	Name string `json:"name" yaml:"name"`

	// PageIndex is the zero-based page where the title line appeared. It does
	// not change when the product's content continues onto later pages.
	PageIndex int `json:"page_index" yaml:"page_index"`

	// RawLines holds uncategorized lines in insertion order.
	RawLines []string `json:"raw_lines" yaml:"raw_lines"`

	// PriceText is the first price match; empty when none was seen.
	PriceText string `json:"price_text,omitempty" yaml:"price_text,omitempty"`

	// Dimensions is the first dimensions match; empty when none was seen.
	Dimensions string `json:"dimensions,omitempty" yaml:"dimensions,omitempty"`

	// Specs maps key to value. A repeated key overwrites the earlier value.
	Specs map[string]string `json:"specs" yaml:"specs"`

	// Features holds bullet-derived strings in order.
	Features []string `json:"features" yaml:"features"`
}

// NewProductDraft returns an empty draft for the given title and origin page.
func NewProductDraft(name string, pageIndex int) *ProductDraft {
	return &ProductDraft{
		Name:      name,
		PageIndex: pageIndex,
		Specs:     make(map[string]string),
	}
}

// HasPrice reports whether a price has been recorded.
func (d *ProductDraft) HasPrice() bool { return d.PriceText != "" }

// HasDimensions reports whether dimensions have been recorded.
func (d *ProductDraft) HasDimensions() bool { return d.Dimensions != "" }

// PageImages maps a zero-based page index to the image files extracted from
// that page, in extraction order.
type PageImages map[int][]string

// Product is one record of the output payload.
type Product struct {
	Name            string            `json:"name" yaml:"name"`
	Description     string            `json:"description" yaml:"description"`
	FullDescription string            `json:"fullDescription" yaml:"fullDescription"`
	Features        []string          `json:"features" yaml:"features"`
	Specs           map[string]string `json:"specs" yaml:"specs"`
	Dimensions      *string           `json:"dimensions" yaml:"dimensions"`

	// Price is always null in extracted output; the importer derives it.
	Price     *float64 `json:"price" yaml:"price"`
	PriceText *string  `json:"priceText" yaml:"priceText"`

	// SourcePage is the 1-based page the product title was found on.
	SourcePage int      `json:"sourcePage" yaml:"sourcePage"`
	Images     []string `json:"images" yaml:"images"`
	Image      string   `json:"image" yaml:"image"`
	ImageURL   string   `json:"imageUrl" yaml:"imageUrl"`
	VideoURL   string   `json:"videoUrl" yaml:"videoUrl"`

	Category   string  `json:"category" yaml:"category"`
	InStock    bool    `json:"inStock" yaml:"inStock"`
	StockCount int     `json:"stockCount" yaml:"stockCount"`
	Rating     float64 `json:"rating" yaml:"rating"`
	Reviews    int     `json:"reviews" yaml:"reviews"`
	Active     bool    `json:"active" yaml:"active"`
}

// Payload is the document written by the extract command and read by import.
type Payload struct {
	Items  []Product `json:"items" yaml:"items"`
	Source string    `json:"source" yaml:"source"`
}
