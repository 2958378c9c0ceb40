package analyze

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"attribute-analyzer/internal/diagnostic"
	"attribute-analyzer/internal/match"
)

// LargeScan is the comparison count above which a run is flagged as slow.
const LargeScan = 5_000_000

// Options configures an Analyzer.
type Options struct {
	// Threshold is the inclusive minimum similarity, 0-100.
	Threshold float64
	// Scorer names the similarity strategy ("indel" or "sequence").
	Scorer string
	// Workers is the number of goroutines used by the matcher.
	Workers int
	Source  SourceOptions
}

// Analyzer loads labels and groups near-duplicates.
type Analyzer struct {
	opts   Options
	logger *slog.Logger
}

// New creates an Analyzer. A nil logger falls back to slog.Default().
func New(opts Options, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}

	return &Analyzer{opts: opts, logger: logger}
}

// Run loads the label column of path and analyzes it.
// Settings are validated before the file is opened.
func (a *Analyzer) Run(ctx context.Context, path string) (*Result, error) {
	if _, err := a.validate(); err != nil {
		return nil, err
	}

	a.logger.Debug("loading labels", "path", path, "column", a.opts.Source.Column, "sheet", a.opts.Source.Sheet)

	src, err := LoadLabels(path, a.opts.Source)
	if err != nil {
		return nil, err
	}

	return a.Analyze(ctx, src)
}

// Analyze groups the labels of an already loaded source.
// A source carrying error diagnostics is rejected with *match.InvalidInputError.
func (a *Analyzer) Analyze(ctx context.Context, src *Source) (*Result, error) {
	scorer, err := a.validate()
	if err != nil {
		return nil, err
	}

	return a.analyze(ctx, src, scorer)
}

func (a *Analyzer) validate() (match.Scorer, error) {
	err := match.ValidateThreshold(a.opts.Threshold)
	if err != nil {
		return nil, err
	}

	return match.ScorerByName(a.opts.Scorer)
}

func (a *Analyzer) analyze(ctx context.Context, src *Source, scorer match.Scorer) (*Result, error) {
	if src.Diagnostics.HasErrors() {
		return nil, &match.InvalidInputError{
			Source: src.Path,
			Column: src.Column,
			Reason: src.Diagnostics.Error().Error(),
		}
	}

	res := &Result{
		RunID:     uuid.New(),
		Source:    src.Path,
		Sheet:     src.Sheet,
		Column:    src.Column,
		Threshold: a.opts.Threshold,
		Scorer:    scorerName(a.opts.Scorer),
		Rows:      src.Rows,
		Labels:    len(src.Cells),
		Started:   time.Now(),
	}

	res.Diagnostics.Merge(src.Diagnostics)

	labels := src.Labels()
	res.Distinct = len(match.DistinctLabels(labels))

	addDuplicates(&res.Diagnostics, src)

	comparisons := Comparisons(res.Distinct)
	if comparisons > LargeScan {
		res.Diagnostics.AddWarning(diagnostic.CodeScanBound,
			fmt.Sprintf("%d distinct labels need %d comparisons", res.Distinct, comparisons),
			src.Path, 0)
	}

	log := a.logger.With("run_id", res.RunID.String())
	log.Info("analysis started",
		"source", src.Path,
		"labels", res.Labels,
		"distinct", res.Distinct,
		"threshold", res.Threshold,
		"scorer", res.Scorer,
	)

	groups, err := match.NewMatcher(scorer, a.opts.Workers).Find(ctx, labels, a.opts.Threshold)
	if err != nil {
		var inputErr *match.InvalidInputError
		if errors.As(err, &inputErr) && inputErr.Source == "" {
			inputErr.Source = src.Path
			inputErr.Column = src.Column
		}

		log.Error("analysis failed", "error", err)

		return nil, err
	}

	res.Groups = groups
	res.Finished = time.Now()

	log.Info("analysis finished",
		"groups", len(groups),
		"pairs", groups.PairCount(),
		"comparisons", comparisons,
		"duplicates", res.Diagnostics.Count(diagnostic.CodeDuplicateLabel),
		"duration", res.Duration(),
	)

	return res, nil
}

// addDuplicates records one info diagnostic per label that occurs more than once.
func addDuplicates(d *diagnostic.Diagnostics, src *Source) {
	rows := make(map[string][]int)

	var order []string

	for _, c := range src.Cells {
		label := c.Value.String()
		if _, seen := rows[label]; !seen {
			order = append(order, label)
		}

		rows[label] = append(rows[label], c.Row)
	}

	for _, label := range order {
		at := rows[label]
		if len(at) < 2 {
			continue
		}

		values := make([]string, len(at))
		for i, r := range at {
			values[i] = strconv.Itoa(r)
		}

		d.AddInfo(diagnostic.CodeDuplicateLabel,
			fmt.Sprintf("label %q occurs %d times and is compared once", label, len(at)),
			src.Path, at[0], values...)
	}
}

func scorerName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return match.ScorerIndel
	}

	return name
}
