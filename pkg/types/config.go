// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// TextBackend identifies the library used to read text lines from a PDF.
type TextBackend string

const (
	// TextRows reconstructs lines from positioned text rows (ledongthuc/pdf).
	TextRows TextBackend = "rows"
	// TextFitz reads page text through MuPDF (go-fitz).
	TextFitz TextBackend = "fitz"
)

// ImageBackend identifies how page images are produced.
type ImageBackend string

const (
	// ImagesEmbedded writes every image object embedded in a page (pdfcpu).
	ImagesEmbedded ImageBackend = "embedded"
	// ImagesRaster renders each whole page at the configured DPI (go-fitz).
	ImagesRaster ImageBackend = "raster"
)

// DefaultImageDPI is the rasterization resolution used when none is configured.
const DefaultImageDPI = 144

// CatalogDefaults holds the fixed catalog fields stamped on every record and
// the label used for synthesized dimension lines.
type CatalogDefaults struct {
	// Category is the category label of every extracted product.
	Category string `json:"category" yaml:"category"`

	// DimensionsLabel prefixes synthesized "<label>: <value>" description lines.
	DimensionsLabel string `json:"dimensions_label" yaml:"dimensions_label"`

	// Rating is the default rating value.
	Rating float64 `json:"rating" yaml:"rating"`
}

// DefaultCatalogDefaults returns the defaults used by the original catalog.
func DefaultCatalogDefaults() CatalogDefaults {
	return CatalogDefaults{
		Category:        "קטלוג",
		DimensionsLabel: "מידות",
		Rating:          4.5,
	}
}

// ExtractConfig holds settings for one extract run.
type ExtractConfig struct {
	// InputPath is the catalog PDF.
	InputPath string `json:"input_path" yaml:"input_path"`

	// OutputPath is the payload destination (default: <input-stem>.generated.json
	// next to the input).
	OutputPath string `json:"output_json" yaml:"output_json"`

	// ImageDir receives extracted images (default: images/<input-stem> under the
	// output's parent directory).
	ImageDir string `json:"image_dir" yaml:"image_dir"`

	// ImageDPI is the rasterization resolution (default 144).
	ImageDPI int `json:"image_dpi" yaml:"image_dpi"`

	// TextBackend selects the line source: rows or fitz.
	TextBackend TextBackend `json:"text_backend" yaml:"text_backend"`

	// ImageBackend selects the image extractor: embedded or raster.
	ImageBackend ImageBackend `json:"image_backend" yaml:"image_backend"`

	// BaseDir is the directory image paths are made relative to before they
	// are normalized (normally the working directory).
	BaseDir string `json:"base_dir" yaml:"base_dir"`

	// PublicPrefix is stripped from image paths and replaced by "/".
	PublicPrefix string `json:"public_prefix" yaml:"public_prefix"`

	// Catalog holds the fixed record defaults.
	Catalog CatalogDefaults `json:"catalog" yaml:"catalog"`
}

// ImportConfig holds settings for the catalog import stage.
type ImportConfig struct {
	// DBPath is the SQLite database file.
	DBPath string `json:"db" yaml:"db"`

	// DimensionsLabel prefixes the dimension feature added on import.
	DimensionsLabel string `json:"dimensions_label" yaml:"dimensions_label"`
}
