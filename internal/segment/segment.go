// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package segment turns the text lines of a catalog into product drafts.
// The Segmenter walks pages in order and lines within each page, opening a
// draft at every accepted title line and feeding the lines that follow into
// it through Ingest.
package segment

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/pdiddy/catalog-extractor/internal/heuristics"
	"github.com/pdiddy/catalog-extractor/pkg/types"
)

// Segmenter splits page lines into product drafts.
type Segmenter struct {
	log zerolog.Logger
}

// NewSegmenter returns a Segmenter that reports skipped titles to log.
func NewSegmenter(log zerolog.Logger) *Segmenter {
	return &Segmenter{log: log.With().Str("component", "segment").Logger()}
}

// Segment scans pages (outer slice, zero-based page index) and their lines
// and returns the finalized drafts in the order their titles appeared.
//
// At most one draft is open at a time. A line that looks like a new product
// closes the open draft; if its title is rejected no draft is opened, the
// line itself is dropped, and following lines are discarded until the next
// accepted title. Lines before the first title are discarded as well.
func (s *Segmenter) Segment(pages [][]string) []*types.ProductDraft {
	var (
		drafts  []*types.ProductDraft
		current *types.ProductDraft
	)

	for pageIndex, lines := range pages {
		for _, raw := range lines {
			line := strings.TrimSpace(raw)
			if line == "" {
				continue
			}

			if heuristics.IsNewProductLine(line) {
				if current != nil {
					drafts = append(drafts, current)
					current = nil
				}

				title := heuristics.ExtractTitle(line)
				if !heuristics.AcceptTitle(title) {
					s.log.Debug().
						Int("page", pageIndex+1).
						Str("title", title).
						Msg("skipping suspicious title")
					continue
				}

				current = types.NewProductDraft(title, pageIndex)
				continue
			}

			if current == nil {
				continue
			}
			Ingest(current, line)
		}
	}

	if current != nil {
		drafts = append(drafts, current)
	}

	s.log.Info().Int("drafts", len(drafts)).Msg("parsed product drafts")
	return drafts
}
