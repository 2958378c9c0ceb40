package match

import "sort"

// Match is one candidate found for a base label.
type Match struct {
	Candidate string
	Score     int
}

// Group holds the candidates recorded under one base label, in the order
// they were found.
type Group struct {
	Base    string
	Matches []Match
}

// Groups is the similarity index of one analysis run: one entry per base
// label that has at least one match, ordered by first occurrence of the base.
// Groups are not merged transitively; a label can be a candidate in several
// groups and the base of its own.
type Groups []Group

// Lookup returns the matches recorded for base.
func (g Groups) Lookup(base string) ([]Match, bool) {
	for i := range g {
		if g[i].Base == base {
			return g[i].Matches, true
		}
	}

	return nil, false
}

// PairCount returns the total number of (base, candidate) pairs.
func (g Groups) PairCount() int {
	n := 0
	for i := range g {
		n += len(g[i].Matches)
	}

	return n
}

// Pairs flattens the groups into pairs, groups first, matches in found order.
func (g Groups) Pairs() Pairs {
	out := make(Pairs, 0, g.PairCount())

	for _, group := range g {
		for _, m := range group.Matches {
			out = append(out, Pair{Base: group.Base, Candidate: m.Candidate, Score: m.Score})
		}
	}

	return out
}

// Pair is a base label associated with one of its candidates.
// Base always occurs before Candidate in the source.
type Pair struct {
	Base      string
	Candidate string
	Score     int
}

// Pairs is a list of pairs with ranking functionality.
type Pairs []Pair

// Len implements sort.Interface.
func (p Pairs) Len() int { return len(p) }

// Swap implements sort.Interface.
func (p Pairs) Swap(i, j int) { p[i], p[j] = p[j], p[i] }

// Less implements sort.Interface.
// Sorts by score descending, then by base label for determinism.
func (p Pairs) Less(i, j int) bool {
	// Higher score comes first
	if p[i].Score != p[j].Score {
		return p[i].Score > p[j].Score
	}
	// Tie-breaker: alphabetical by base label
	return p[i].Base < p[j].Base
}

// SortByScore sorts in place by descending score, then ascending base label.
// Pairs equal on both keep their relative order.
func (p Pairs) SortByScore() Pairs {
	sort.Stable(p)

	return p
}
