package match

import "strings"

// Difference is one gap between consecutive matching blocks of two strings:
// the stretch of A and the stretch of B that fall between the same blocks.
type Difference struct {
	A string
	B string
}

// IsEmpty reports whether both sides of the gap are empty.
func (d Difference) IsEmpty() bool {
	return d.A == "" && d.B == ""
}

// Differences is the ordered list of gaps between two strings.
type Differences []Difference

// FindDifferences aligns a and b by longest common blocks and returns the gap
// before every matching block, including the terminating empty block, so the
// result ends with the trailing gap. Gaps where both sides are empty are kept;
// use Real or Render to drop them.
func FindDifferences(a, b string) Differences {
	ra, rb := []rune(a), []rune(b)
	blocks := newSequenceMatcher(ra, rb).GetMatchingBlocks()

	diffs := make(Differences, 0, len(blocks))
	lastA, lastB := 0, 0

	for _, block := range blocks {
		diffs = append(diffs, Difference{
			A: string(ra[lastA:block.A]),
			B: string(rb[lastB:block.B]),
		})
		lastA = block.A + block.Size
		lastB = block.B + block.Size
	}

	return diffs
}

// Real returns the gaps where at least one side is non-empty.
func (d Differences) Real() Differences {
	var out Differences

	for _, diff := range d {
		if !diff.IsEmpty() {
			out = append(out, diff)
		}
	}

	return out
}

// Render formats the real gaps as "{A} → {B}" joined with " vs ".
// Identical strings render as "".
func (d Differences) Render() string {
	gaps := d.Real()
	parts := make([]string, len(gaps))

	for i, diff := range gaps {
		parts[i] = diff.A + " → " + diff.B
	}

	return strings.Join(parts, " vs ")
}

// SideA returns the A side of every real gap.
func (d Differences) SideA() []string {
	return d.side(func(diff Difference) string { return diff.A })
}

// SideB returns the B side of every real gap.
func (d Differences) SideB() []string {
	return d.side(func(diff Difference) string { return diff.B })
}

func (d Differences) side(pick func(Difference) string) []string {
	gaps := d.Real()
	out := make([]string, len(gaps))

	for i, diff := range gaps {
		out[i] = pick(diff)
	}

	return out
}
