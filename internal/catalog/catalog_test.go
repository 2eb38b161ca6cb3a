// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/catalog-extractor/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	cfg := types.ImportConfig{
		DBPath:          filepath.Join(t.TempDir(), "db", "catalog.db"),
		DimensionsLabel: "Size",
	}
	store, err := NewStore(cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func strPtr(s string) *string { return &s }

func TestExtractPrice(t *testing.T) {
	tests := []struct {
		name   string
		inputs []string
		want   float64
		ok     bool
	}{
		{name: "largest number wins", inputs: []string{"0.5 CBM for 349.90"}, want: 349.90, ok: true},
		{name: "first input with a number wins", inputs: []string{"", "call us", "price 120", "999"}, want: 120, ok: true},
		{name: "zero is ignored", inputs: []string{"0", "75"}, want: 75, ok: true},
		{name: "thousands separator splits the number", inputs: []string{"1,200"}, want: 200, ok: true},
		{name: "nothing numeric", inputs: []string{"free", ""}, ok: false},
		{name: "no inputs", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractPrice(tt.inputs...)
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Run("skips records without a name", func(t *testing.T) {
		_, ok := Normalize(types.Product{Name: "   "}, "Size")
		assert.False(t, ok)
	})

	t.Run("derives price and dimension fields", func(t *testing.T) {
		in := types.Product{
			Name:       "Desk",
			PriceText:  strPtr("₪ 450"),
			Dimensions: strPtr("80 x 40"),
			Specs:      map[string]string{"Material": "Oak"},
			Features:   []string{"Size: 80 x 40"},
			Images:     []string{"/images/desk.png"},
		}

		got, ok := Normalize(in, "Size")
		require.True(t, ok)

		require.NotNil(t, got.Price)
		assert.Equal(t, 450.0, *got.Price)
		assert.Equal(t, "80 x 40", got.Description)
		assert.Equal(t, "80 x 40", got.FullDescription)
		assert.Equal(t, map[string]string{"Material": "Oak", "dimensions": "80 x 40"}, got.Specs)
		assert.Equal(t, []string{"Size: 80 x 40"}, got.Features, "feature is not duplicated")
		assert.Equal(t, "/images/desk.png", got.Image)
		assert.Equal(t, "/images/desk.png", got.ImageURL)
		assert.Equal(t, map[string]string{"Material": "Oak"}, in.Specs, "input specs are not modified")
	})

	t.Run("existing Dimensions spec is kept", func(t *testing.T) {
		in := types.Product{
			Name:       "Shelf",
			Dimensions: strPtr("30 x 90"),
			Specs:      map[string]string{"Dimensions": "30cm x 90cm"},
		}
		got, _ := Normalize(in, "Size")
		assert.Equal(t, map[string]string{"Dimensions": "30cm x 90cm"}, got.Specs)
		assert.Equal(t, []string{"Size: 30 x 90"}, got.Features)
	})

	t.Run("keeps positive price", func(t *testing.T) {
		price := 99.0
		got, _ := Normalize(types.Product{Name: "Lamp", Price: &price, PriceText: strPtr("120")}, "Size")
		assert.Equal(t, 99.0, *got.Price)
	})

	t.Run("fills placeholders", func(t *testing.T) {
		got, _ := Normalize(types.Product{Name: "Stool"}, "Size")
		assert.Nil(t, got.Price)
		assert.Equal(t, placeholderDescription, got.Description)
		assert.Equal(t, placeholderDescription, got.FullDescription)
		assert.Equal(t, PlaceholderImage, got.Image)
		assert.Equal(t, PlaceholderImage, got.ImageURL)
		assert.Equal(t, []string{PlaceholderImage}, got.Images)
		assert.NotNil(t, got.Specs)
		assert.NotNil(t, got.Features)
	})

	t.Run("image fields fall back to each other", func(t *testing.T) {
		got, _ := Normalize(types.Product{Name: "Bench", ImageURL: "/images/bench.png"}, "Size")
		assert.Equal(t, "/images/bench.png", got.Image)
		assert.Equal(t, []string{"/images/bench.png"}, got.Images)
	})
}

func TestNewStoreCreatesSchema(t *testing.T) {
	store := testStore(t)

	for _, table := range []string{"products", "import_runs"} {
		var n int
		err := store.db.QueryRow(`SELECT count(*) FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&n)
		require.NoError(t, err)
		assert.Equal(t, 1, n, "table %s", table)
	}
}

func TestImport(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()
	doc := types.Payload{
		Source: "catalog.pdf",
		Items: []types.Product{
			{
				Name:       "Work table",
				PriceText:  strPtr("₪ 1200"),
				Dimensions: strPtr("80cm x 40cm x 75cm"),
				Specs:      map[string]string{"Material": "Oak"},
				Features:   []string{"Foldable legs"},
				SourcePage: 1,
				Images:     []string{"/images/catalog/catalog_p001_img01.png"},
				Category:   "Furniture",
				InStock:    true,
				Rating:     4.5,
				Active:     true,
			},
			{Name: ""},
		},
	}

	var buf bytes.Buffer
	summary, err := store.Import(ctx, doc, &buf)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Processed)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, 2, summary.Total())
	assert.Len(t, summary.RunID, 36)
	assert.Contains(t, buf.String(), "imported Work table")
	assert.Contains(t, buf.String(), "processed: 1, skipped: 1")

	got, err := store.Get(ctx, "Work table")
	require.NoError(t, err)
	require.NotNil(t, got.Price)
	assert.Equal(t, 1200.0, *got.Price)
	require.NotNil(t, got.Dimensions)
	assert.Equal(t, "80cm x 40cm x 75cm", *got.Dimensions)
	assert.Equal(t, "Oak", got.Specs["Material"])
	assert.Equal(t, "80cm x 40cm x 75cm", got.Specs["dimensions"])
	assert.Equal(t, []string{"Foldable legs", "Size: 80cm x 40cm x 75cm"}, got.Features)
	assert.Equal(t, "/images/catalog/catalog_p001_img01.png", got.Image)
	assert.Equal(t, 1, got.SourcePage)
	assert.Equal(t, "Furniture", got.Category)
	assert.True(t, got.InStock)
	assert.True(t, got.Active)
	assert.Equal(t, 4.5, got.Rating)

	var source string
	var processed, skipped int
	err = store.db.QueryRow(`SELECT source, processed, skipped FROM import_runs WHERE id = ?`, summary.RunID).
		Scan(&source, &processed, &skipped)
	require.NoError(t, err)
	assert.Equal(t, "catalog.pdf", source)
	assert.Equal(t, 1, processed)
	assert.Equal(t, 1, skipped)
}

func TestImportUpsertsByName(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()
	var buf bytes.Buffer

	first := types.Payload{Items: []types.Product{{Name: "Desk", Description: "old"}}}
	second := types.Payload{Items: []types.Product{{Name: "Desk", Description: "new"}}}

	s1, err := store.Import(ctx, first, &buf)
	require.NoError(t, err)
	s2, err := store.Import(ctx, second, &buf)
	require.NoError(t, err)
	assert.NotEqual(t, s1.RunID, s2.RunID)

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := store.Get(ctx, "Desk")
	require.NoError(t, err)
	assert.Equal(t, "new", got.Description)
	assert.Nil(t, got.Price)
	assert.Nil(t, got.Dimensions)
}

func TestJSONColumn(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		want    string
		wantErr bool
	}{
		{name: "string slice", value: []string{"Foldable legs"}, want: `["Foldable legs"]`},
		{name: "nil slice", value: []string(nil), want: "null"},
		{name: "map", value: map[string]string{"Material": "Oak"}, want: `{"Material":"Oak"}`},
		{name: "unsupported value", value: math.Inf(1), wantErr: true},
		{name: "unsupported type", value: make(chan int), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := jsonColumn(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorContains(t, err, "encoding column")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJSONColumnWrapsMarshalError(t *testing.T) {
	_, err := jsonColumn(math.NaN())
	var unsupported *json.UnsupportedValueError
	assert.ErrorAs(t, err, &unsupported)
}

func TestGetNotFound(t *testing.T) {
	store := testStore(t)

	_, err := store.Get(context.Background(), "Nothing")
	require.ErrorIs(t, err, ErrNotFound)
}
