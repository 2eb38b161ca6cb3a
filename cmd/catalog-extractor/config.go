// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/catalog-extractor/internal/catalog"
	"github.com/pdiddy/catalog-extractor/internal/logging"
	"github.com/pdiddy/catalog-extractor/internal/payload"
	"github.com/pdiddy/catalog-extractor/pkg/types"
)

func init() {
	defaults := types.DefaultCatalogDefaults()
	viper.SetDefault("log_level", "info")
	viper.SetDefault("log_format", string(logging.FormatConsole))
	viper.SetDefault("image_dpi", types.DefaultImageDPI)
	viper.SetDefault("text_backend", string(types.TextRows))
	viper.SetDefault("image_backend", string(types.ImagesEmbedded))
	viper.SetDefault("public_prefix", payload.DefaultPublicPrefix)
	viper.SetDefault("catalog.category", defaults.Category)
	viper.SetDefault("catalog.dimensions_label", defaults.DimensionsLabel)
	viper.SetDefault("catalog.rating", defaults.Rating)
	viper.SetDefault("db", catalog.DefaultDBPath)
}

// bindFlag binds a flag to a viper key so that flag > env > config file >
// default holds for every setting.
func bindFlag(flag *pflag.Flag, key string) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("binding flag %s: %v", flag.Name, err))
	}
}

// newLogger builds the logger passed down to every stage.
func newLogger() (zerolog.Logger, error) {
	return logging.New(logging.Config{
		Level:  viper.GetString("log_level"),
		Format: logging.Format(viper.GetString("log_format")),
		Output: os.Stderr,
	})
}

func catalogDefaults() types.CatalogDefaults {
	return types.CatalogDefaults{
		Category:        viper.GetString("catalog.category"),
		DimensionsLabel: viper.GetString("catalog.dimensions_label"),
		Rating:          viper.GetFloat64("catalog.rating"),
	}
}

// extractConfig assembles the extract settings for inputPath. Image paths
// in the payload are made relative to the working directory.
func extractConfig(inputPath string) (types.ExtractConfig, error) {
	wd, err := os.Getwd()
	if err != nil {
		return types.ExtractConfig{}, fmt.Errorf("getting working directory: %w", err)
	}
	return types.ExtractConfig{
		InputPath:    inputPath,
		OutputPath:   viper.GetString("output_json"),
		ImageDir:     viper.GetString("image_dir"),
		ImageDPI:     viper.GetInt("image_dpi"),
		TextBackend:  types.TextBackend(viper.GetString("text_backend")),
		ImageBackend: types.ImageBackend(viper.GetString("image_backend")),
		BaseDir:      wd,
		PublicPrefix: viper.GetString("public_prefix"),
		Catalog:      catalogDefaults(),
	}, nil
}

func importConfig() types.ImportConfig {
	return types.ImportConfig{
		DBPath:          viper.GetString("db"),
		DimensionsLabel: viper.GetString("catalog.dimensions_label"),
	}
}
