// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the catalog-extractor CLI.
// The extract command turns a catalog PDF into a product payload plus page
// images; the import command loads a reviewed payload into a SQLite catalog.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the catalog-extractor CLI.
var rootCmd = &cobra.Command{
	Use:   "catalog-extractor",
	Short: "Extract product records and images from catalog PDFs",
	Long: `catalog-extractor reads a product catalog PDF, splits its text into
products using layout heuristics, extracts the page images, and writes a JSON
payload of product records for review.

The output is a draft: review it and adjust the parsing settings before
importing it into the catalog with the import command.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if viper.GetBool("no_color") {
			color.NoColor = true
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./catalog-extractor.yaml or ~/.config/catalog-extractor/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, or error")
	rootCmd.PersistentFlags().String("log-format", "console", "log format: console or json")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	bindFlag(rootCmd.PersistentFlags().Lookup("log-level"), "log_level")
	bindFlag(rootCmd.PersistentFlags().Lookup("log-format"), "log_format")
	bindFlag(rootCmd.PersistentFlags().Lookup("no-color"), "no_color")
}

func initConfig() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "warning: reading .env:", err)
	}

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("catalog-extractor")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "catalog-extractor"))
		}
	}

	viper.SetEnvPrefix("CATALOG_EXTRACTOR")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
