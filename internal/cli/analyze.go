package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"attribute-analyzer/internal/analyze"
	"attribute-analyzer/internal/diagnostic"
	"attribute-analyzer/internal/report"
)

type analyzeFlags struct {
	threshold float64
	column    string
	sheet     string
	noHeader  bool
	out       string
	scorer    string
	workers   int
	diffBasis string
	noReport  bool
	stats     bool
}

func newAnalyzeCmd(a *app) *cobra.Command {
	var f analyzeFlags

	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Find near-duplicate labels in a file and export a review workbook",
		Long: `Read the label column of FILE, group near-duplicate labels and write a
review workbook next to the configured output directory.

FILE may be an Excel workbook (.xlsx, .xlsm), a .csv or .tsv file, or plain
text with one label per line. The first row is treated as a header unless
--no-header is given.

Examples:
  attribute-analyzer analyze attributes.xlsx
  attribute-analyzer analyze attributes.xlsx --threshold 85 --sheet Export
  attribute-analyzer analyze attrs.csv --column "Attribute Name" --out reports
  attribute-analyzer analyze labels.txt --no-report --stats`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runAnalyze(cmd, args[0], f)
		},
	}

	flags := cmd.Flags()
	flags.Float64VarP(&f.threshold, "threshold", "t", 0, "minimum similarity 0-100 (default from config, 90)")
	flags.StringVarP(&f.column, "column", "c", "", `label column: header name or 1-based index like "#2"`)
	flags.StringVar(&f.sheet, "sheet", "", "workbook sheet (default first sheet)")
	flags.BoolVar(&f.noHeader, "no-header", false, "first row holds data, not column names")
	flags.StringVarP(&f.out, "out", "o", "", "report output directory")
	flags.StringVar(&f.scorer, "scorer", "", "similarity scorer: indel or sequence")
	flags.IntVarP(&f.workers, "workers", "w", 0, "matcher goroutines")
	flags.StringVar(&f.diffBasis, "diff-basis", "", "difference text from raw or normalized labels")
	flags.BoolVar(&f.noReport, "no-report", false, "skip the review workbook")
	flags.BoolVar(&f.stats, "stats", false, "print summary statistics")

	return cmd
}

// applyFlags overrides config values with the flags that were set.
func (a *app) applyFlags(cmd *cobra.Command, f analyzeFlags) {
	flags := cmd.Flags()
	cfg := &a.cfg

	if flags.Changed("threshold") {
		cfg.Threshold = f.threshold
	}

	if flags.Changed("column") {
		cfg.Input.Column = f.column
	}

	if flags.Changed("sheet") {
		cfg.Input.Sheet = f.sheet
	}

	if f.noHeader {
		cfg.Input.Header = false
	}

	if flags.Changed("out") {
		cfg.Report.Dir = f.out
	}

	if flags.Changed("scorer") {
		cfg.Scorer = f.scorer
	}

	if flags.Changed("workers") {
		cfg.Workers = f.workers
	}

	if flags.Changed("diff-basis") {
		cfg.Report.DiffBasis = f.diffBasis
	}

	if f.noReport {
		cfg.Report.Enabled = false
	}
}

func (a *app) runAnalyze(cmd *cobra.Command, path string, f analyzeFlags) error {
	a.applyFlags(cmd, f)

	if err := a.cfg.Validate(); err != nil {
		return err
	}

	basis, err := report.ParseDiffBasis(a.cfg.Report.DiffBasis)
	if err != nil {
		return err
	}

	analyzer := analyze.New(analyze.Options{
		Threshold: a.cfg.Threshold,
		Scorer:    a.cfg.Scorer,
		Workers:   a.cfg.Workers,
		Source:    a.cfg.Input.SourceOptions(),
	}, a.logger)

	res, err := analyzer.Run(cmd.Context(), path)
	if err != nil {
		return err
	}

	for _, d := range res.Diagnostics.All() {
		if d.Severity == diagnostic.DiagnosticWarning {
			a.logger.Warn(d.Message, "code", d.Code, "source", d.Source)

			continue
		}

		a.logger.Debug(d.Message, "code", d.Code, "row", d.Row, "values", d.Values)
	}

	out := cmd.OutOrStdout()
	th := newTheme(out)

	fmt.Fprintln(out, th.headingStyle(fmt.Sprintf("Showing matches with %s%% or higher similarity:", report.FormatThreshold(res.Threshold))))

	if err := report.WriteSummary(out, res); err != nil {
		return fmt.Errorf("print summary: %w", err)
	}

	if f.stats {
		fmt.Fprintln(out)

		if err := report.WriteStats(out, report.Summarize(res)); err != nil {
			return fmt.Errorf("print statistics: %w", err)
		}
	}

	if !a.cfg.Report.Enabled {
		return nil
	}

	writer := &report.Writer{Dir: a.cfg.Report.Dir, DiffBasis: basis, Logger: a.logger}

	reportPath, err := writer.Write(res)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\n%s %s\n", th.successStyle("Results exported to:"), reportPath)

	if res.Groups.PairCount() > 0 {
		fmt.Fprintln(out, th.hintStyle("Fill in the reviewer columns (E-H) to record merge decisions."))
	}

	return nil
}
