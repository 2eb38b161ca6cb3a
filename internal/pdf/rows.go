// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdf

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/rs/zerolog"
)

// defaultFontSize stands in for text elements that report no font size.
const defaultFontSize = 12

// RowSource reads lines by grouping positioned text into rows. Pages whose
// rows cannot be read fall back to the page's plain text.
type RowSource struct {
	log zerolog.Logger
}

// NewRowSource returns a RowSource.
func NewRowSource(log zerolog.Logger) *RowSource {
	return &RowSource{log: log.With().Str("component", "rows").Logger()}
}

// PageLines implements LineSource.
func (s *RowSource) PageLines(pdfPath string) ([][]string, error) {
	f, r, err := pdf.Open(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("opening PDF %s: %w", pdfPath, err)
	}
	defer f.Close()

	n := r.NumPage()
	pages := make([][]string, n)
	for i := 1; i <= n; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			s.log.Warn().Int("page", i).Msg("page has no content")
			continue
		}
		lines, err := pageRows(p)
		if err != nil {
			s.log.Warn().Int("page", i).Err(err).Msg("could not read page text")
			continue
		}
		pages[i-1] = lines
	}
	return pages, nil
}

func pageRows(p pdf.Page) ([]string, error) {
	rows, err := p.GetTextByRow()
	if err != nil {
		text, perr := p.GetPlainText(nil)
		if perr != nil {
			return nil, perr
		}
		return SplitLines(text), nil
	}

	kept := make([]*pdf.Row, 0, len(rows))
	for _, row := range rows {
		if row != nil && len(row.Content) > 0 {
			kept = append(kept, row)
		}
	}

	// PDF y grows upwards; the top row has the largest y.
	sort.SliceStable(kept, func(i, j int) bool {
		return averageY(kept[i].Content) > averageY(kept[j].Content)
	})

	var lines []string
	for _, row := range kept {
		line := strings.TrimSpace(rowText(row.Content))
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

func averageY(texts []pdf.Text) float64 {
	if len(texts) == 0 {
		return 0
	}
	var total float64
	for _, t := range texts {
		total += t.Y
	}
	return total / float64(len(texts))
}

// rowText joins the text elements of a row left to right, inserting a space
// where the gap to the next element exceeds a fifth of the font size.
func rowText(texts []pdf.Text) string {
	sorted := make([]pdf.Text, len(texts))
	copy(sorted, texts)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })

	var b strings.Builder
	for i, t := range sorted {
		b.WriteString(t.S)
		if i == len(sorted)-1 {
			break
		}
		size := t.FontSize
		if size <= 0 {
			size = defaultFontSize
		}
		gap := sorted[i+1].X - (t.X + t.W)
		if gap > size*0.2 {
			b.WriteByte(' ')
		}
	}
	return b.String()
}
