// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package payload

import (
	"github.com/pdiddy/catalog-extractor/pkg/types"
)

// AssignImages returns, for each draft in order, the images extracted from
// the draft's origin page. Drafts on the same page each receive the page's
// full image list; a page without images yields an empty list.
func AssignImages(drafts []*types.ProductDraft, pages types.PageImages) [][]string {
	assigned := make([][]string, len(drafts))
	for i, d := range drafts {
		images := pages[d.PageIndex]
		assigned[i] = append([]string{}, images...)
	}
	return assigned
}
