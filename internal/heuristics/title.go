// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package heuristics holds the line predicates and extractors that drive
// catalog segmentation: title detection and validation, and the price,
// dimensions, bullet, and key/value matchers applied to product lines.
// Each function inspects a single line so the rules can be tuned and tested
// without touching the segmentation loop.
package heuristics

import (
	"regexp"
	"strings"
	"unicode"
)

// maxTitleWords is the word limit for a title-cased line to count as a title.
const maxTitleWords = 12

// MinTitleLetters is the default letter count a title needs to be accepted.
const MinTitleLetters = 3

var (
	numberingRe = regexp.MustCompile(`^\s*\d+[).\-]\s+`)

	invalidPrefixRe  = regexp.MustCompile(`(?i)^\s*(from|material|size|backsplash|dimensions|thickness|shelf|shelves|drawer|drawers|legs|leg|panel|panels|counter|countertop|sink|faucet|contact)\b`)
	onlyDimensionsRe = regexp.MustCompile(`(?i)^\s*[\d\sx×*.,-]+(?:mm|cm|m|ס"מ|סמ)\s*$`)
	numericOnlyRe    = regexp.MustCompile(`^\s*[\d\sx×*.,-]+$`)
	contactRe        = regexp.MustCompile(`\+?\d{6,}`)
)

// IsNewProductLine reports whether line starts a new product: it begins with
// a numbering marker ("12. ", "3) ", "4- "), or it has at most twelve words
// and is already title-cased. Lines carrying a key/value colon are never
// title-cased titles; "Material: Oak" is a spec, not a product.
func IsNewProductLine(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	if numberingRe.MatchString(line) {
		return true
	}
	if strings.ContainsAny(line, ":：") {
		return false
	}
	return len(strings.Fields(line)) <= maxTitleWords && IsTitleCased(line)
}

// ExtractTitle strips the leading numbering marker and surrounding whitespace.
// A second marker left behind by the first pass ("1. 2) Desk") is removed too.
func ExtractTitle(line string) string {
	title := strings.TrimSpace(line)
	for range 2 {
		title = strings.TrimSpace(numberingRe.ReplaceAllString(title, ""))
	}
	return title
}

// IsSuspiciousTitle reports whether a candidate title is more likely a spec
// line, a measurement, or contact details than a product name.
func IsSuspiciousTitle(title string) bool {
	stripped := strings.TrimSpace(title)
	switch {
	case stripped == "":
		return true
	case contactRe.MatchString(stripped):
		return true
	case invalidPrefixRe.MatchString(stripped):
		return true
	case onlyDimensionsRe.MatchString(stripped):
		return true
	case numericOnlyRe.MatchString(stripped):
		return true
	}
	return false
}

// HasEnoughLetters reports whether text contains at least minimum letters in
// any script.
func HasEnoughLetters(text string, minimum int) bool {
	count := 0
	for _, r := range text {
		if unicode.IsLetter(r) {
			count++
			if count >= minimum {
				return true
			}
		}
	}
	return count >= minimum
}

// AcceptTitle reports whether title may open a new product draft.
func AcceptTitle(title string) bool {
	return !IsSuspiciousTitle(title) && HasEnoughLetters(title, MinTitleLetters)
}
