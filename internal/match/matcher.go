package match

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Matcher drives the all-pairs comparison over a distinct label set.
//
// The scan is O(n²) in the number of distinct labels: every pair (i, j) with
// i < j is visited, with no blocking, indexing or early termination. This is
// the scaling bound of an analysis run.
type Matcher struct {
	// Scorer computes similarity for pairs that are not case variants.
	Scorer Scorer
	// Workers is the number of goroutines sharing the outer loop. Values
	// below 2 scan sequentially.
	Workers int
}

// NewMatcher returns a Matcher. A nil scorer selects IndelScorer.
func NewMatcher(scorer Scorer, workers int) *Matcher {
	if scorer == nil {
		scorer = IndelScorer{}
	}

	return &Matcher{Scorer: scorer, Workers: workers}
}

// FindSimilarAttributes groups near-duplicate labels with the default scorer,
// sequentially. threshold is inclusive, in [0, 100].
func FindSimilarAttributes(labels []string, threshold float64) (Groups, error) {
	return NewMatcher(nil, 1).Find(context.Background(), labels, threshold)
}

// Find compares every pair of distinct labels and records, under the earlier
// label, each later label that is a case variant (score 100) or whose
// normalized similarity reaches threshold.
//
// The context is checked between outer-loop iterations. On error no partial
// result is returned.
func (m *Matcher) Find(ctx context.Context, labels []string, threshold float64) (Groups, error) {
	err := ValidateThreshold(threshold)
	if err != nil {
		return nil, err
	}

	distinct := DistinctLabels(labels)
	if len(distinct) == 0 {
		return nil, &InvalidInputError{Reason: "no labels to compare"}
	}

	scorer := m.Scorer
	if scorer == nil {
		scorer = IndelScorer{}
	}

	normalized := make([]string, len(distinct))
	for i, label := range distinct {
		normalized[i] = Normalize(label)
	}

	// One slot per base label; slot i is written only by the worker owning i.
	slots := make([]Group, len(distinct))
	scan := func(i int) {
		slots[i] = scanBase(scorer, distinct, normalized, i, threshold)
	}

	if m.Workers < 2 {
		for i := range distinct {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			scan(i)
		}
	} else {
		err = scanParallel(ctx, len(distinct), m.Workers, scan)
		if err != nil {
			return nil, err
		}
	}

	groups := make(Groups, 0, len(slots))

	for _, slot := range slots {
		if len(slot.Matches) > 0 {
			groups = append(groups, slot)
		}
	}

	return groups, nil
}

// scanBase compares label i against every later label.
func scanBase(scorer Scorer, labels, normalized []string, i int, threshold float64) Group {
	group := Group{Base: labels[i]}
	base := labels[i]

	for j := i + 1; j < len(labels); j++ {
		candidate := labels[j]
		if base == candidate {
			continue
		}

		if IsCaseVariant(base, candidate) {
			group.Matches = append(group.Matches, Match{Candidate: candidate, Score: 100})
			continue
		}

		score := scorer.Score(normalized[i], normalized[j])
		if float64(score) >= threshold {
			group.Matches = append(group.Matches, Match{Candidate: candidate, Score: score})
		}
	}

	return group
}

// scanParallel spreads outer-loop indexes over workers. Worker w owns
// i = w, w+workers, w+2*workers, ..., which evens out the shrinking inner loops.
func scanParallel(ctx context.Context, n, workers int, scan func(i int)) error {
	workers = min(workers, n)
	g, gctx := errgroup.WithContext(ctx)

	for w := range workers {
		g.Go(func() error {
			for i := w; i < n; i += workers {
				if err := gctx.Err(); err != nil {
					return err
				}

				scan(i)
			}

			return nil
		})
	}

	err := g.Wait()
	if err != nil {
		return err
	}

	return ctx.Err()
}
