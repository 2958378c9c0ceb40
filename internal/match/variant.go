package match

import (
	"strings"
	"unicode"
)

// IsCaseVariant reports whether a and b differ as written but are equal once
// case and punctuation are ignored. Word characters (letters, numbers,
// underscore) and whitespace are kept; everything else is dropped before the
// case-insensitive comparison. So "Color" / "color." are variants while
// "Size-Range" / "Size Range" are not (the space survives).
func IsCaseVariant(a, b string) bool {
	if a == b {
		return false
	}

	return foldPunctuation(a) == foldPunctuation(b)
}

func foldPunctuation(s string) string {
	var result strings.Builder

	result.Grow(len(s))

	for _, r := range s {
		if isWordRune(r) || isSpace(r) {
			result.WriteRune(r)
		}
	}

	return strings.ToLower(result.String())
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
