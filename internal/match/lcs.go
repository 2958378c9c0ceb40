package match

import "unicode/utf8"

// LongestCommonSubsequence computes the length of the longest common
// subsequence of a and b, compared rune by rune.
//
// Time complexity: O(len(a) * len(b))
// Space complexity: O(min(len(a), len(b))).
func LongestCommonSubsequence(a, b string) int {
	if a == b {
		return utf8.RuneCountInString(a)
	}

	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}

	// Ensure ra is the shorter sequence for space optimization
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	// Use two rows instead of full matrix
	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)

	for j := 1; j <= len(rb); j++ {
		curr[0] = 0

		for i := 1; i <= len(ra); i++ {
			if ra[i-1] == rb[j-1] {
				curr[i] = prev[i-1] + 1
			} else {
				curr[i] = max(prev[i], curr[i-1])
			}
		}

		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

// IndelDistance is the minimum number of single-rune insertions and
// deletions turning a into b.
func IndelDistance(a, b string) int {
	total := utf8.RuneCountInString(a) + utf8.RuneCountInString(b)

	return total - 2*LongestCommonSubsequence(a, b)
}

// IndelRatio computes a similarity between 0 and 1:
// 1 - IndelDistance / (len(a) + len(b)), which equals 2 * LCS(a, b) / (len(a) + len(b)).
// Two empty strings are identical (1.0).
func IndelRatio(a, b string) float64 {
	total := utf8.RuneCountInString(a) + utf8.RuneCountInString(b)
	if total == 0 {
		return 1.0
	}

	return float64(total-IndelDistance(a, b)) / float64(total)
}
