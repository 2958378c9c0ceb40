package analyze

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"attribute-analyzer/internal/diagnostic"
	"attribute-analyzer/internal/match"
)

// cellFunc types a raw cell found at the 0-based row and column.
type cellFunc func(row, col int, raw string) (match.Value, error)

func textCell(_, _ int, raw string) (match.Value, error) {
	return match.Text(raw), nil
}

// LoadLabels reads the label column of the file at path.
// The format is chosen by extension: .xlsx/.xlsm workbooks, .csv and .tsv
// delimited files, anything else as plain text with one label per line.
//
// A missing column or a column with no values yields *match.InvalidInputError.
func LoadLabels(path string, opts SourceOptions) (*Source, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return loadWorkbook(path, opts)
	case ".csv":
		return loadDelimited(path, ',', opts)
	case ".tsv":
		return loadDelimited(path, '\t', opts)
	default:
		return loadPlainText(path)
	}
}

// extractColumn picks the label column out of rows and collects its non-blank cells.
func extractColumn(path, sheet string, rows [][]string, opts SourceOptions, cell cellFunc) (*Source, error) {
	if len(rows) == 0 {
		return nil, &match.InvalidInputError{Source: path, Column: opts.Column, Reason: "file has no rows"}
	}

	var header []string
	if opts.Header {
		header = rows[0]
	}

	col, name, err := resolveColumn(header, opts.Column, maxWidth(rows))
	if err != nil {
		return nil, &match.InvalidInputError{Source: path, Column: opts.Column, Reason: err.Error()}
	}

	src := &Source{Path: path, Sheet: sheet, Column: name}

	start := 0
	if opts.Header {
		start = 1
	}

	blank, short := 0, 0
	firstBlank, firstShort := 0, 0

	for r := start; r < len(rows); r++ {
		src.Rows++

		row := rows[r]
		if col >= len(row) {
			if short == 0 {
				firstShort = r + 1
			}

			short++

			continue
		}

		if row[col] == "" {
			if blank == 0 {
				firstBlank = r + 1
			}

			blank++

			continue
		}

		value, err := cell(r, col, row[col])
		if err != nil {
			src.Diagnostics.AddError(diagnostic.CodeUnreadableCell, err.Error(), "", r+1, row[col])

			continue
		}

		if _, ok := value.(match.Text); !ok {
			src.Diagnostics.AddInfo(diagnostic.CodeStringified,
				fmt.Sprintf("non-text cell compared as %q", value.String()), path, r+1, row[col])
		}

		src.Cells = append(src.Cells, Cell{Row: r + 1, Value: value})
	}

	if blank > 0 {
		src.Diagnostics.AddInfo(diagnostic.CodeBlankCell,
			fmt.Sprintf("%d blank label cell(s) skipped", blank), path, firstBlank)
	}

	if short > 0 {
		src.Diagnostics.AddInfo(diagnostic.CodeShortRow,
			fmt.Sprintf("%d row(s) have no cell in the label column", short), path, firstShort)
	}

	// Unreadable cells are left for the caller to report.
	if len(src.Cells) == 0 && !src.Diagnostics.HasErrors() {
		return nil, &match.InvalidInputError{Source: path, Column: name, Reason: "label column has no values"}
	}

	return src, nil
}

// resolveColumn maps a column selector to a 0-based index and a display name.
func resolveColumn(header []string, selector string, width int) (int, string, error) {
	if width == 0 {
		return -1, "", fmt.Errorf("file has no columns")
	}

	trimmed := strings.TrimSpace(selector)
	if trimmed == "" {
		return 0, headerNameForIndex(header, 0), nil
	}

	for i, name := range header {
		if strings.EqualFold(strings.TrimSpace(name), trimmed) {
			return i, headerNameForIndex(header, i), nil
		}
	}

	if !strings.HasPrefix(trimmed, "#") {
		return -1, "", fmt.Errorf("column %q not found", selector)
	}

	idx, err := parseColumnIndex(trimmed)
	if err != nil {
		return -1, "", err
	}

	if idx >= width {
		return -1, "", fmt.Errorf("column index %s is out of range (file has %d columns)", trimmed, width)
	}

	return idx, headerNameForIndex(header, idx), nil
}

func parseColumnIndex(token string) (int, error) {
	trimmed := strings.TrimSpace(strings.TrimPrefix(token, "#"))

	idx, err := strconv.Atoi(trimmed)
	if err != nil {
		return -1, fmt.Errorf("invalid column index %q", token)
	}

	if idx <= 0 {
		return -1, fmt.Errorf("column indices are 1-based: %q", token)
	}

	return idx - 1, nil
}

func headerNameForIndex(header []string, idx int) string {
	if idx < len(header) {
		if name := strings.TrimSpace(header[idx]); name != "" {
			return name
		}
	}

	return fmt.Sprintf("#%d", idx+1)
}

func maxWidth(rows [][]string) int {
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}

	return width
}
