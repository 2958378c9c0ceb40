package report

import (
	"fmt"
	"strings"

	"attribute-analyzer/internal/match"
)

// DiffBasis selects which form of the labels the difference text is computed on.
type DiffBasis string

const (
	// DiffRaw compares the labels as they appear in the input.
	DiffRaw DiffBasis = "raw"
	// DiffNormalized compares the normalized labels.
	DiffNormalized DiffBasis = "normalized"
)

// ParseDiffBasis accepts "raw" or "normalized", case-insensitively. Empty selects DiffRaw.
func ParseDiffBasis(s string) (DiffBasis, error) {
	switch DiffBasis(strings.ToLower(strings.TrimSpace(s))) {
	case "", DiffRaw:
		return DiffRaw, nil
	case DiffNormalized:
		return DiffNormalized, nil
	default:
		return "", fmt.Errorf("unknown diff basis %q (want %q or %q)", s, DiffRaw, DiffNormalized)
	}
}

// Record is one pair as it appears in the report.
type Record struct {
	// PairID numbers records from 1 in report order.
	PairID int
	match.Pair
	Differences match.Differences
}

// DiffText returns the rendered differences, "" when the compared forms are equal.
func (r Record) DiffText() string {
	return r.Differences.Render()
}

// BuildRecords ranks pairs by descending score then base label and numbers them.
// The input slice is not modified.
func BuildRecords(pairs match.Pairs, basis DiffBasis) []Record {
	ranked := make(match.Pairs, len(pairs))
	copy(ranked, pairs)
	ranked.SortByScore()

	records := make([]Record, len(ranked))

	for i, p := range ranked {
		a, b := p.Base, p.Candidate
		if basis == DiffNormalized {
			a, b = match.Normalize(a), match.Normalize(b)
		}

		records[i] = Record{
			PairID:      i + 1,
			Pair:        p,
			Differences: match.FindDifferences(a, b),
		}
	}

	return records
}
