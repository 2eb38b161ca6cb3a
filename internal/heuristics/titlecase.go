// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package heuristics

import (
	"strings"
	"unicode"
)

// TitleCase maps s so that every cased letter following an uncased character
// is in title case and every cased letter following a cased one is lower
// case. Scripts without case (Hebrew, Arabic, CJK) pass through unchanged, so
// lines in those scripts always compare equal to their title-cased form.
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevCased := false
	for _, r := range s {
		if prevCased {
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(unicode.ToTitle(r))
		}
		prevCased = isCased(r)
	}
	return b.String()
}

// IsTitleCased reports whether s is unchanged by TitleCase.
func IsTitleCased(s string) bool {
	return TitleCase(s) == s
}

func isCased(r rune) bool {
	return unicode.IsUpper(r) || unicode.IsLower(r) || unicode.IsTitle(r)
}
