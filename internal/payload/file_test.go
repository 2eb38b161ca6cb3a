// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package payload

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/catalog-extractor/pkg/types"
)

func samplePayload() types.Payload {
	dims := "80cm x 40cm"
	return types.Payload{
		Source: "catalog.pdf",
		Items: []types.Product{{
			Name:       "שולחן <עבודה>",
			Features:   []string{"Foldable legs"},
			Specs:      map[string]string{"b": "2", "a": "1"},
			Dimensions: &dims,
			SourcePage: 1,
			Images:     []string{"/img/a.png"},
			Image:      "/img/a.png",
			ImageURL:   "/img/a.png",
			Category:   "קטלוג",
			InStock:    true,
			Rating:     4.5,
			Active:     true,
		}},
	}
}

func TestMarshal(t *testing.T) {
	data, err := Marshal(samplePayload())
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, `"name": "שולחן <עבודה>"`, "non-ASCII and HTML characters stay readable")
	assert.Contains(t, out, `"price": null`)
	assert.Contains(t, out, `"priceText": null`)
	assert.Contains(t, out, `"source": "catalog.pdf"`)
	assert.Less(t, strings.Index(out, `"a": "1"`), strings.Index(out, `"b": "2"`), "spec keys are sorted")
}

func TestMarshal_Deterministic(t *testing.T) {
	first, err := Marshal(samplePayload())
	require.NoError(t, err)
	second, err := Marshal(samplePayload())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestMarshal_EmptyItems(t *testing.T) {
	data, err := Marshal(types.Payload{Source: "x.pdf"})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"items": []`)
}

func TestWriteReadFile(t *testing.T) {
	for _, name := range []string{"out/products.json", "out/products.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			want := samplePayload()

			require.NoError(t, WriteFile(path, want))
			got, err := ReadFile(path)
			require.NoError(t, err)

			assert.Equal(t, want.Source, got.Source)
			require.Len(t, got.Items, 1)
			assert.Equal(t, want.Items[0].Name, got.Items[0].Name)
			assert.Equal(t, want.Items[0].Specs, got.Items[0].Specs)
			require.NotNil(t, got.Items[0].Dimensions)
			assert.Equal(t, "80cm x 40cm", *got.Items[0].Dimensions)
			assert.Nil(t, got.Items[0].PriceText)
		})
	}
}

func TestReadFile_BareArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"name":"Desk"},{"name":"Chair"}]`), 0o644))

	got, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "Chair", got.Items[1].Name)
	assert.Empty(t, got.Source)
}

func TestReadFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadFile(filepath.Join(dir, "missing.json"))
	require.Error(t, err)

	noItems := filepath.Join(dir, "no-items.json")
	require.NoError(t, os.WriteFile(noItems, []byte(`{"source":"x.pdf"}`), 0o644))
	_, err = ReadFile(noItems)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'items' array")

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{not json`), 0o644))
	_, err = ReadFile(bad)
	require.Error(t, err)
}
