// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"strconv"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/catalog-extractor/internal/catalog"
	"github.com/pdiddy/catalog-extractor/internal/payload"
	"github.com/pdiddy/catalog-extractor/pkg/types"
)

func TestFlagDefaultsMatchConfigDefaults(t *testing.T) {
	tests := []struct {
		cmd  *cobra.Command
		flag string
		key  string
		want string
	}{
		{cmd: extractCmd, flag: "image-dpi", key: "image_dpi", want: strconv.Itoa(types.DefaultImageDPI)},
		{cmd: extractCmd, flag: "text-backend", key: "text_backend", want: string(types.TextRows)},
		{cmd: extractCmd, flag: "image-backend", key: "image_backend", want: string(types.ImagesEmbedded)},
		{cmd: extractCmd, flag: "public-prefix", key: "public_prefix", want: payload.DefaultPublicPrefix},
		{cmd: importCmd, flag: "db", key: "db", want: catalog.DefaultDBPath},
	}
	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			flag := tt.cmd.Flags().Lookup(tt.flag)
			require.NotNil(t, flag)
			assert.Equal(t, tt.want, flag.DefValue)
			assert.Equal(t, tt.want, viper.GetString(tt.key))
		})
	}
}

func TestExtractConfigDefaults(t *testing.T) {
	cfg, err := extractConfig("catalog.pdf")
	require.NoError(t, err)

	assert.Equal(t, "catalog.pdf", cfg.InputPath)
	assert.Equal(t, types.DefaultImageDPI, cfg.ImageDPI)
	assert.Equal(t, types.TextRows, cfg.TextBackend)
	assert.Equal(t, types.ImagesEmbedded, cfg.ImageBackend)
	assert.Equal(t, payload.DefaultPublicPrefix, cfg.PublicPrefix)
	assert.Equal(t, types.DefaultCatalogDefaults(), cfg.Catalog)
	assert.NotEmpty(t, cfg.BaseDir)
}
