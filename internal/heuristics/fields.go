// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package heuristics

import (
	"regexp"
	"strings"
)

var (
	priceRe = regexp.MustCompile(`(USD|EUR|ILS|₪|\$|€|RMB|CNY|USD/Unit)\s*:?\s*([0-9.,]+)`)

	// Two or three unit-bearing numbers joined by x, ×, * or "by".
	dimensionsRe = regexp.MustCompile(`(?i)\d+[.,]?\d*\s*(?:mm|cm|m|ס"מ|סמ)(?:(?:\s*[x×*]\s*|\s+by\s+)\d+[.,]?\d*\s*(?:mm|cm|m|ס"מ|סמ)){1,2}`)

	bulletRe = regexp.MustCompile(`^[\x{2022}\x{25CF}\-*]\s*(.+)`)

	specSeparatorRe = regexp.MustCompile(`\s*[:：\-]\s*`)
)

// MatchPrice returns the first currency-amount substring in line, trimmed.
func MatchPrice(line string) (string, bool) {
	m := priceRe.FindString(line)
	if m == "" {
		return "", false
	}
	return strings.TrimSpace(m), true
}

// MatchDimensions returns the first dimensions substring in line, trimmed.
func MatchDimensions(line string) (string, bool) {
	m := dimensionsRe.FindString(line)
	if m == "" {
		return "", false
	}
	return strings.TrimSpace(m), true
}

// MatchBullet reports whether line starts with a bullet glyph and returns the
// text after it, trimmed.
func MatchBullet(line string) (string, bool) {
	m := bulletRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// HasSpecSeparator reports whether line contains a colon (ASCII or
// full-width) or a hyphen.
func HasSpecSeparator(line string) bool {
	return strings.ContainsAny(line, ":：-")
}

// SplitSpec splits line at the first colon or hyphen separator, together
// with the whitespace around it. It succeeds only when both key and value
// are non-empty after trimming. Separators after the first one stay in the
// value, so "Legs - steel - black" yields ("Legs", "steel - black").
func SplitSpec(line string) (key, value string, ok bool) {
	loc := specSeparatorRe.FindStringIndex(line)
	if loc == nil {
		return "", "", false
	}
	key = strings.TrimSpace(line[:loc[0]])
	value = strings.TrimSpace(line[loc[1]:])
	if key == "" || value == "" {
		return "", "", false
	}
	return key, value, true
}
