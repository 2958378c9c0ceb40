package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"attribute-analyzer/internal/analyze"
	"attribute-analyzer/internal/match"
)

const (
	wideRule   = 80
	narrowRule = 40
)

// HistogramBins is the number of equal-width score bins in Stats.Histogram.
const HistogramBins = 20

// Stats summarizes the pairs of one run.
type Stats struct {
	Pairs int
	// Average is the mean score, 0 when there are no pairs.
	Average float64
	// Exact counts pairs scored 100.
	Exact int
	// Histogram counts scores per 5-point bin; bin i covers [5i, 5i+5), the last bin includes 100.
	Histogram [HistogramBins]int
}

// Summarize computes the statistics of res.
func Summarize(res *analyze.Result) Stats {
	var s Stats

	total := 0

	for _, g := range res.Groups {
		for _, m := range g.Matches {
			s.Pairs++
			total += m.Score

			if m.Score == 100 {
				s.Exact++
			}

			bin := min(m.Score*HistogramBins/100, HistogramBins-1)
			s.Histogram[max(bin, 0)]++
		}
	}

	if s.Pairs > 0 {
		s.Average = float64(total) / float64(s.Pairs)
	}

	return s
}

// WriteSummary prints every group with its matches, then the pairs bucketed
// by score from 100 down to the threshold, then the grand total.
func WriteSummary(w io.Writer, res *analyze.Result) error {
	p := &printer{w: w}

	p.line("\nPotential similar attributes found:")
	p.rule("=", wideRule)

	buckets := make(map[int][]match.Pair)

	for _, g := range res.Groups {
		if len(g.Matches) == 0 {
			continue
		}

		p.line("\nBase attribute: %s", g.Base)
		p.line("Similar to:")

		for _, m := range sortedMatches(g.Matches) {
			p.line("  - %s (similarity: %d%%)", m.Candidate, m.Score)
			buckets[m.Score] = append(buckets[m.Score], match.Pair{Base: g.Base, Candidate: m.Candidate, Score: m.Score})
		}

		p.rule("-", narrowRule)
	}

	p.line("\nSummary by Similarity Percentage:")
	p.rule("=", wideRule)

	total := 0

	for percent := 100; percent >= int(res.Threshold); percent-- {
		pairs := buckets[percent]
		if len(pairs) == 0 {
			continue
		}

		p.line("\n%d%% Similarity (%d pairs):", percent, len(pairs))

		for i, pair := range pairs {
			p.line("  %d. '%s' ↔ '%s'", i+1, pair.Base, pair.Candidate)
		}

		total += len(pairs)
	}

	p.line("")
	p.rule("=", wideRule)
	p.line("Total number of similar pairs found: %d", total)
	p.rule("=", wideRule)

	return p.err
}

// WriteStats prints the run statistics and a text histogram of scores.
func WriteStats(w io.Writer, s Stats) error {
	p := &printer{w: w}

	if s.Pairs == 0 {
		p.line("No similar attributes found with the current threshold.")

		return p.err
	}

	p.line("Total Similar Pairs: %d", s.Pairs)
	p.line("Average Similarity:  %.1f%%", s.Average)
	p.line("100%% Matches:        %d", s.Exact)

	peak := 0
	for _, n := range s.Histogram {
		peak = max(peak, n)
	}

	p.line("\nDistribution of Similarity Scores:")

	for i := HistogramBins - 1; i >= 0; i-- {
		n := s.Histogram[i]
		if n == 0 {
			continue
		}

		bar := strings.Repeat("#", max(1, n*narrowRule/peak))
		p.line("  %3d-%3d%% %s %d", i*5, i*5+4+boolInt(i == HistogramBins-1), bar, n)
	}

	return p.err
}

func boolInt(b bool) int {
	if b {
		return 1
	}

	return 0
}

func sortedMatches(matches []match.Match) []match.Match {
	out := make([]match.Match, len(matches))
	copy(out, matches)

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}

		return out[i].Candidate < out[j].Candidate
	})

	return out
}

// printer remembers the first write error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(format string, args ...any) {
	if p.err != nil {
		return
	}

	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) rule(char string, width int) {
	p.line("%s", strings.Repeat(char, width))
}
