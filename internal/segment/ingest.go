// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package segment

import (
	"github.com/pdiddy/catalog-extractor/internal/heuristics"
	"github.com/pdiddy/catalog-extractor/pkg/types"
)

// Ingest routes one non-empty line into draft. Price and dimensions are
// captured first-match-wins and never stop processing. A bullet line becomes
// a feature, a key/value line becomes a spec (last write wins), and anything
// else is appended to the draft's raw lines.
func Ingest(draft *types.ProductDraft, line string) {
	if line == "" {
		return
	}

	if price, ok := heuristics.MatchPrice(line); ok && !draft.HasPrice() {
		draft.PriceText = price
	}

	if dims, ok := heuristics.MatchDimensions(line); ok && !draft.HasDimensions() {
		draft.Dimensions = dims
	}

	if feature, ok := heuristics.MatchBullet(line); ok {
		if feature != "" {
			draft.Features = append(draft.Features, feature)
		}
		return
	}

	if heuristics.HasSpecSeparator(line) {
		if key, value, ok := heuristics.SplitSpec(line); ok {
			if draft.Specs == nil {
				draft.Specs = make(map[string]string)
			}
			draft.Specs[key] = value
			return
		}
	}

	draft.RawLines = append(draft.RawLines, line)
}
