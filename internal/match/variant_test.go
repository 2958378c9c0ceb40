package match

import (
	"testing"
)

func TestIsCaseVariant(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected bool
	}{
		// Pure case differences
		{"Color", "color", true},
		{"COUNTRY OF ORIGIN", "Country of Origin", true},

		// Punctuation is ignored as well
		{"Color.", "color", true},
		{"Size-Range", "SizeRange", true},
		{"snake_case", "Snake_Case!", true},
		{".", "-", true},

		// Whitespace is significant
		{"Size-Range", "Size Range", false},
		{"A B", "A  B", false},
		{"a\x1c", "a", false},
		{"a\x1fb", "A\x1fB.", true},
		{"Item #", "item", false},

		// Identical strings are not variants
		{"Color", "Color", false},
		{"", "", false},

		// Real textual drift
		{"Color", "colour", false},
		{"Größe", "GRÖSSE", false},
		{"Größe", "größe", true},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := IsCaseVariant(tt.a, tt.b)
			if result != tt.expected {
				t.Errorf("IsCaseVariant(%q, %q) = %v, want %v", tt.a, tt.b, result, tt.expected)
			}

			// Verify symmetry
			if reverse := IsCaseVariant(tt.b, tt.a); reverse != result {
				t.Errorf("IsCaseVariant symmetry failed: (%q, %q) = %v, (%q, %q) = %v",
					tt.a, tt.b, result, tt.b, tt.a, reverse)
			}
		})
	}
}
