package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Case and surrounding whitespace
		{"Color", "color"},
		{"  Country of Origin. ", "country of origin"},
		{"Tab\tSep  Space", "tab sep space"},
		{"\x1cUnit\x1dSep\x1f", "unit sep"},
		{"Weight\x1e(kg)", "weight (kg)"},

		// Periods not next to a digit are removed
		{"e.g. Size", "eg size"},
		{"Inc.", "inc"},
		{"ABC.DEF", "abcdef"},
		{"a..b", "ab"},

		// Periods next to a digit are kept
		{"Version 3.5", "version 3.5"},
		{"1..2", "1..2"},
		{".5 in", ".5 in"},
		{"3. apples", "3. apples"},
		{"x.5.y", "x.5.y"},

		// Parenthesis spacing
		{"Weight (kg)", "weight (kg)"},
		{"Weight(kg)", "weight (kg)"},
		{"Weight ( kg )Net", "weight (kg) net"},
		{"Dims (L x W) cm", "dims (l x w) cm"},
		{"(Note)", "(note)"},

		// Edge cases
		{"", ""},
		{" . ", ""},
		{"A", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := Normalize(tt.input)
			if result != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Color", "  Country of Origin. ", "e.g. Size", "Weight ( kg )Net",
		"a . 5", "1..2", "x.(y)", "((a))", ") ( ", "Size - Range.", "Ünïcode Ärtikel.",
		"Width (cm)", "5.(x", "..", "(. )",
	}

	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "Normalize not idempotent for %q", in)
	}
}

func TestNormalizeValue(t *testing.T) {
	tests := []struct {
		name     string
		input    Value
		expected string
	}{
		{"text", Text("Size."), "size"},
		{"integer number", Number(42), "42"},
		{"decimal number", Number(3.5), "3.5"},
		{"bool", Bool(true), "true"},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeValue(tt.input))
		})
	}
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "Color", Text("Color").String())
	assert.Equal(t, "3", Number(3).String())
	assert.Equal(t, "0.25", Number(0.25).String())
	assert.Equal(t, "-12", Number(-12).String())
	assert.Equal(t, "TRUE", Bool(true).String())
	assert.Equal(t, "FALSE", Bool(false).String())
}

func TestLabels(t *testing.T) {
	values := []Value{Text("Color"), Number(7), nil, Bool(false)}

	assert.Equal(t, []string{"Color", "7", "", "FALSE"}, Labels(values))
}

func TestDistinctLabels(t *testing.T) {
	labels := []string{"Color", "Size", "Color", "", "   ", "color", "Size"}

	assert.Equal(t, []string{"Color", "Size", "   ", "color"}, DistinctLabels(labels))
	assert.Empty(t, DistinctLabels(nil))
}
