package match

import (
	"regexp"
	"strings"
	"unicode"
)

// spaceClass matches the same runes as isSpace.
const spaceClass = `[\t\n\v\f\r\x{1c}-\x{1f}\x{85}\p{Z}]`

var (
	openParenRe  = regexp.MustCompile(spaceClass + `*\(` + spaceClass + `*`)
	closeParenRe = regexp.MustCompile(spaceClass + `*\)` + spaceClass + `*`)
)

// Normalize canonicalizes a raw label into the form used for scoring.
// The normalization pipeline:
// 1. Case-fold to lower and trim.
// 2. Drop periods with no digit on either side ("e.g." -> "eg", "3.5" is kept).
// 3. Standardize spacing around parentheses ("Weight(kg)" -> "weight (kg)").
// 4. Collapse whitespace runs to a single space and trim again.
//
// Normalize is idempotent.
func Normalize(s string) string {
	s = strings.TrimFunc(strings.ToLower(s), isSpace)
	s = stripPeriods(s)
	s = openParenRe.ReplaceAllString(s, " (")
	s = closeParenRe.ReplaceAllString(s, ") ")

	return collapseSpaces(s)
}

// NormalizeValue stringifies a cell value and normalizes it.
func NormalizeValue(v Value) string {
	if v == nil {
		return ""
	}

	return Normalize(v.String())
}

// stripPeriods removes every '.' whose neighbours are both non-digits.
// Neighbours are judged on the input, so "1..2" keeps both periods.
func stripPeriods(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}

	runes := []rune(s)

	var result strings.Builder

	result.Grow(len(s))

	for i, r := range runes {
		if r == '.' && !digitAt(runes, i-1) && !digitAt(runes, i+1) {
			continue
		}

		result.WriteRune(r)
	}

	return result.String()
}

func digitAt(runes []rune, i int) bool {
	return i >= 0 && i < len(runes) && unicode.IsDigit(runes[i])
}

// collapseSpaces replaces whitespace runs with one space and trims the ends.
func collapseSpaces(s string) string {
	return strings.Join(strings.FieldsFunc(s, isSpace), " ")
}

// isSpace is unicode.IsSpace plus the information separators U+001C to U+001F.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || ('\x1c' <= r && r <= '\x1f')
}
