package match

import (
	"fmt"
	"strconv"
)

// Value is a raw cell read from a label source.
// The concrete variants are Text, Number and Bool; each defines how it is
// stringified before comparison.
type Value interface {
	fmt.Stringer
	isValue()
}

// Text is a string cell.
type Text string

// Number is a numeric cell. It prints in its shortest decimal form ("3", "3.5").
type Number float64

// Bool is a boolean cell. It prints the way spreadsheets display it.
type Bool bool

func (Text) isValue()   {}
func (Number) isValue() {}
func (Bool) isValue()   {}

func (t Text) String() string { return string(t) }

func (n Number) String() string { return strconv.FormatFloat(float64(n), 'f', -1, 64) }

func (b Bool) String() string {
	if b {
		return "TRUE"
	}

	return "FALSE"
}

// Labels stringifies values, preserving order. Nil values become "".
func Labels(values []Value) []string {
	out := make([]string, len(values))

	for i, v := range values {
		if v != nil {
			out[i] = v.String()
		}
	}

	return out
}

// DistinctLabels returns the non-empty labels with exact duplicates removed,
// in order of first occurrence.
func DistinctLabels(labels []string) []string {
	out := make([]string, 0, len(labels))
	seen := make(map[string]struct{}, len(labels))

	for _, label := range labels {
		if label == "" {
			continue
		}

		if _, ok := seen[label]; ok {
			continue
		}

		seen[label] = struct{}{}
		out = append(out, label)
	}

	return out
}
