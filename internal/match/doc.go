// Package match provides label normalization, case-variant detection,
// similarity scoring, pairwise grouping and difference extraction for
// near-duplicate attribute labels.
//
// Key functions:
//   - Normalize: canonicalizes a label for scoring
//   - IsCaseVariant: detects labels equal up to case and punctuation
//   - Scorer: computes a 0-100 lexical similarity between normalized labels
//   - FindSimilarAttributes: groups candidate matches per base label
//   - FindDifferences: extracts the differing spans between two labels
package match
