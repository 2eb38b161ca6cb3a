// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog imports extracted product payloads into a SQLite catalog.
// Records are normalized on the way in and upserted by name; every import
// run is recorded with its counts.
package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"

	"github.com/pdiddy/catalog-extractor/pkg/types"
)

// DefaultDBPath is the catalog database used when none is configured.
const DefaultDBPath = "catalog.db"

// ErrNotFound is returned by Get for an unknown product name.
var ErrNotFound = errors.New("product not found")

// Store manages the catalog SQLite database.
type Store struct {
	db              *sql.DB
	dimensionsLabel string
	log             zerolog.Logger
}

// NewStore opens or creates the catalog database at cfg.DBPath and creates
// the schema if it does not exist.
func NewStore(cfg types.ImportConfig, log zerolog.Logger) (*Store, error) {
	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = DefaultDBPath
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	label := cfg.DimensionsLabel
	if label == "" {
		label = types.DefaultCatalogDefaults().DimensionsLabel
	}

	s := &Store{
		db:              db,
		dimensionsLabel: label,
		log:             log.With().Str("component", "catalog").Logger(),
	}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS products (
			name TEXT PRIMARY KEY,
			description TEXT NOT NULL,
			full_description TEXT NOT NULL,
			features TEXT NOT NULL,
			specs TEXT NOT NULL,
			dimensions TEXT,
			price REAL,
			price_text TEXT,
			source_page INTEGER,
			images TEXT NOT NULL,
			image TEXT NOT NULL,
			image_url TEXT NOT NULL,
			video_url TEXT,
			category TEXT,
			in_stock INTEGER NOT NULL,
			stock_count INTEGER NOT NULL,
			rating REAL,
			reviews INTEGER NOT NULL,
			active INTEGER NOT NULL,
			import_run TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_products_category ON products(category)`,
		`CREATE TABLE IF NOT EXISTS import_runs (
			id TEXT PRIMARY KEY,
			source TEXT,
			imported_at TEXT NOT NULL,
			processed INTEGER NOT NULL,
			skipped INTEGER NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// ImportSummary holds the counts of one import run.
type ImportSummary struct {
	RunID     string
	Processed int
	Skipped   int
}

// Total returns the number of records read from the payload.
func (s ImportSummary) Total() int {
	return s.Processed + s.Skipped
}

// Import normalizes every record of doc and upserts it by name in a single
// transaction. Records without a name are skipped. Per-record status lines
// and a summary are written to w.
func (s *Store) Import(ctx context.Context, doc types.Payload, w io.Writer) (ImportSummary, error) {
	summary := ImportSummary{RunID: uuid.NewString()}
	now := time.Now().UTC().Format(time.RFC3339)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return summary, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO products (name, description, full_description, features, specs,
			dimensions, price, price_text, source_page, images, image, image_url, video_url,
			category, in_stock, stock_count, rating, reviews, active, import_run, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
			description=excluded.description, full_description=excluded.full_description,
			features=excluded.features, specs=excluded.specs, dimensions=excluded.dimensions,
			price=excluded.price, price_text=excluded.price_text, source_page=excluded.source_page,
			images=excluded.images, image=excluded.image, image_url=excluded.image_url,
			video_url=excluded.video_url, category=excluded.category, in_stock=excluded.in_stock,
			stock_count=excluded.stock_count, rating=excluded.rating, reviews=excluded.reviews,
			active=excluded.active, import_run=excluded.import_run, updated_at=excluded.updated_at`)
	if err != nil {
		return summary, fmt.Errorf("preparing upsert: %w", err)
	}
	defer stmt.Close()

	for i, raw := range doc.Items {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		p, ok := Normalize(raw, s.dimensionsLabel)
		if !ok {
			s.log.Warn().Int("index", i).Msg("skipping product without name")
			fmt.Fprintf(w, "skipped  #%d (no name)\n", i+1)
			summary.Skipped++
			continue
		}

		features, err := jsonColumn(p.Features)
		if err != nil {
			return summary, fmt.Errorf("encoding features of %q: %w", p.Name, err)
		}
		specs, err := jsonColumn(p.Specs)
		if err != nil {
			return summary, fmt.Errorf("encoding specs of %q: %w", p.Name, err)
		}
		images, err := jsonColumn(p.Images)
		if err != nil {
			return summary, fmt.Errorf("encoding images of %q: %w", p.Name, err)
		}
		_, err = stmt.ExecContext(ctx,
			p.Name, p.Description, p.FullDescription, features, specs,
			p.Dimensions, p.Price, p.PriceText, p.SourcePage, images, p.Image, p.ImageURL,
			p.VideoURL, p.Category, p.InStock, p.StockCount, p.Rating, p.Reviews, p.Active,
			summary.RunID, now,
		)
		if err != nil {
			return summary, fmt.Errorf("upserting product %q: %w", p.Name, err)
		}
		fmt.Fprintf(w, "imported %s\n", p.Name)
		summary.Processed++
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO import_runs (id, source, imported_at, processed, skipped) VALUES (?, ?, ?, ?, ?)`,
		summary.RunID, doc.Source, now, summary.Processed, summary.Skipped,
	)
	if err != nil {
		return summary, fmt.Errorf("recording import run: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return summary, fmt.Errorf("committing import: %w", err)
	}

	fmt.Fprintf(w, "\nprocessed: %d, skipped: %d (run %s)\n", summary.Processed, summary.Skipped, summary.RunID)
	s.log.Info().
		Str("run", summary.RunID).
		Int("processed", summary.Processed).
		Int("skipped", summary.Skipped).
		Msg("import done")
	return summary, nil
}

// jsonColumn encodes v for a TEXT column holding JSON.
func jsonColumn(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding column: %w", err)
	}
	return string(data), nil
}

// Get reads one product by name. It returns ErrNotFound when no product
// has that name.
func (s *Store) Get(ctx context.Context, name string) (types.Product, error) {
	var (
		p                       types.Product
		features, specs, images string
		dimensions, priceText   sql.NullString
		videoURL, category      sql.NullString
		price, rating           sql.NullFloat64
		sourcePage              sql.NullInt64
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT name, description, full_description, features, specs, dimensions, price,
			price_text, source_page, images, image, image_url, video_url, category,
			in_stock, stock_count, rating, reviews, active
		 FROM products WHERE name = ?`, name,
	).Scan(
		&p.Name, &p.Description, &p.FullDescription, &features, &specs, &dimensions, &price,
		&priceText, &sourcePage, &images, &p.Image, &p.ImageURL, &videoURL, &category,
		&p.InStock, &p.StockCount, &rating, &p.Reviews, &p.Active,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return types.Product{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return types.Product{}, fmt.Errorf("reading product %q: %w", name, err)
	}

	if err := json.Unmarshal([]byte(features), &p.Features); err != nil {
		return types.Product{}, fmt.Errorf("decoding features of %q: %w", name, err)
	}
	if err := json.Unmarshal([]byte(specs), &p.Specs); err != nil {
		return types.Product{}, fmt.Errorf("decoding specs of %q: %w", name, err)
	}
	if err := json.Unmarshal([]byte(images), &p.Images); err != nil {
		return types.Product{}, fmt.Errorf("decoding images of %q: %w", name, err)
	}
	if dimensions.Valid {
		p.Dimensions = &dimensions.String
	}
	if priceText.Valid {
		p.PriceText = &priceText.String
	}
	if price.Valid {
		p.Price = &price.Float64
	}
	p.SourcePage = int(sourcePage.Int64)
	p.VideoURL = videoURL.String
	p.Category = category.String
	p.Rating = rating.Float64
	return p, nil
}

// Count returns the number of stored products.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting products: %w", err)
	}
	return n, nil
}
