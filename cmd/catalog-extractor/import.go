// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/catalog-extractor/internal/catalog"
	"github.com/pdiddy/catalog-extractor/internal/payload"
)

var importCmd = &cobra.Command{
	Use:   "import <payload.json>",
	Short: "Import a reviewed payload into the SQLite catalog",
	Long: `Import reads a payload written by extract (JSON or YAML, either an
object with an "items" array or a bare array of records), fills in missing
prices, descriptions, and images, and upserts every record by name into
the catalog database. Records without a name are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}

	doc, err := payload.ReadFile(args[0])
	if err != nil {
		return err
	}

	store, err := catalog.NewStore(importConfig(), log)
	if err != nil {
		return err
	}
	defer store.Close()

	summary, err := store.Import(context.Background(), doc, os.Stdout)
	if err != nil {
		return err
	}

	success("imported %d products (%d skipped)", summary.Processed, summary.Skipped)
	return nil
}

func init() {
	importCmd.Flags().String("db", catalog.DefaultDBPath, "catalog database file")
	bindFlag(importCmd.Flags().Lookup("db"), "db")

	rootCmd.AddCommand(importCmd)
}
