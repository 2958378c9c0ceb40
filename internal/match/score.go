package match

import (
	"fmt"
	"math"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Scorer computes a lexical similarity between two normalized labels.
// Implementations return an integer in [0, 100] and must be deterministic.
type Scorer interface {
	Score(a, b string) int
}

// Scorer names accepted by ScorerByName.
const (
	ScorerIndel    = "indel"
	ScorerSequence = "sequence"
)

// IndelScorer scores with 2*LCS/(len(a)+len(b)). It is symmetric by construction.
type IndelScorer struct{}

// Score implements Scorer.
func (IndelScorer) Score(a, b string) int {
	return ratioToScore(IndelRatio(a, b))
}

// SequenceScorer scores with the greedy longest-common-block alignment of a
// sequence matcher: matched characters are the summed sizes of its matching
// blocks.
type SequenceScorer struct{}

// Score implements Scorer.
func (SequenceScorer) Score(a, b string) int {
	return ratioToScore(SequenceRatio(a, b))
}

// SequenceRatio returns the sequence matcher ratio of a and b (0 to 1).
func SequenceRatio(a, b string) float64 {
	return newSequenceMatcher([]rune(a), []rune(b)).Ratio()
}

// ScorerByName resolves a configured scorer name. Empty selects the default.
func ScorerByName(name string) (Scorer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", ScorerIndel:
		return IndelScorer{}, nil
	case ScorerSequence:
		return SequenceScorer{}, nil
	default:
		return nil, fmt.Errorf("unknown scorer %q (want %q or %q)", name, ScorerIndel, ScorerSequence)
	}
}

// ratioToScore scales a 0-1 ratio to a percentage, rounding half to even.
func ratioToScore(ratio float64) int {
	score := int(math.RoundToEven(ratio * 100))

	return min(max(score, 0), 100)
}

// newSequenceMatcher builds a matcher comparing a and b rune by rune.
func newSequenceMatcher(a, b []rune) *difflib.SequenceMatcher {
	return difflib.NewMatcher(runeStrings(a), runeStrings(b))
}

func runeStrings(runes []rune) []string {
	out := make([]string, len(runes))
	for i, r := range runes {
		out[i] = string(r)
	}

	return out
}
