package analyze

import (
	"time"

	"github.com/google/uuid"

	"attribute-analyzer/internal/diagnostic"
	"attribute-analyzer/internal/match"
)

// SourceOptions selects where labels are read from.
type SourceOptions struct {
	// Column is a header name (case-insensitive) or a 1-based index such as "#2".
	// Empty selects the first column.
	Column string
	// Sheet names the workbook sheet. Empty selects the first sheet.
	Sheet string
	// Header treats the first row as column names rather than data.
	// Ignored for plain text files.
	Header bool
}

// DefaultSourceOptions reads the first column of the first sheet below a header row.
func DefaultSourceOptions() SourceOptions {
	return SourceOptions{Header: true}
}

// Cell is one non-blank label cell.
type Cell struct {
	// Row is the 1-based row number in the file.
	Row   int
	Value match.Value
}

// Source holds the label column of one input file.
type Source struct {
	Path string
	// Sheet is the workbook sheet read, empty for text formats.
	Sheet string
	// Column is the display name of the label column ("Attribute" or "#1").
	Column string
	// Rows is the number of data rows read, header excluded.
	Rows int
	// Cells are the non-blank cells of the label column in row order.
	Cells       []Cell
	Diagnostics diagnostic.Diagnostics
}

// Values returns the cell values in row order.
func (s *Source) Values() []match.Value {
	out := make([]match.Value, len(s.Cells))
	for i, c := range s.Cells {
		out[i] = c.Value
	}

	return out
}

// Labels returns the stringified cell values in row order.
func (s *Source) Labels() []string {
	return match.Labels(s.Values())
}

// Result is the outcome of one analysis run. It is not persisted.
type Result struct {
	RunID  uuid.UUID
	Source string
	Sheet  string
	Column string
	// Threshold is the inclusive minimum similarity, 0-100.
	Threshold float64
	// Scorer is the name of the similarity strategy used.
	Scorer string
	Groups match.Groups
	// Rows is the number of data rows in the input.
	Rows int
	// Labels is the number of non-blank label cells.
	Labels int
	// Distinct is the number of distinct labels compared.
	Distinct    int
	Diagnostics diagnostic.Diagnostics
	Started     time.Time
	Finished    time.Time
}

// Pairs returns every pair ordered by descending score, then base label.
func (r *Result) Pairs() match.Pairs {
	return r.Groups.Pairs().SortByScore()
}

// Duration returns how long the run took.
func (r *Result) Duration() time.Duration {
	return r.Finished.Sub(r.Started)
}

// Comparisons returns the number of label pairs the scan visits.
func Comparisons(distinct int) int {
	if distinct < 2 {
		return 0
	}

	return distinct * (distinct - 1) / 2
}
