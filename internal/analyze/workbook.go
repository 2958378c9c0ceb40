package analyze

import (
	"fmt"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/xuri/excelize/v2"

	"attribute-analyzer/internal/match"
)

func loadWorkbook(path string, opts SourceOptions) (*Source, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &match.InvalidInputError{Source: path, Reason: "workbook has no sheets"}
	}

	sheet := opts.Sheet
	if sheet == "" {
		sheet = sheets[0]
	} else if !slices.Contains(sheets, sheet) {
		return nil, &match.InvalidInputError{Source: path, Reason: fmt.Sprintf("sheet %q not found", sheet)}
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q of %s: %w", sheet, filepath.Base(path), err)
	}

	return extractColumn(path, sheet, rows, opts, workbookCell(f, sheet))
}

// workbookCell types cells by their stored cell type: booleans become
// match.Bool, numbers match.Number, everything else match.Text.
// A cell whose type cannot be read is an error.
func workbookCell(f *excelize.File, sheet string) cellFunc {
	return func(row, col int, raw string) (match.Value, error) {
		axis, err := excelize.CoordinatesToCellName(col+1, row+1)
		if err != nil {
			return nil, err
		}

		typ, err := f.GetCellType(sheet, axis)
		if err != nil {
			return nil, fmt.Errorf("read type of cell %s: %w", axis, err)
		}

		return typedCell(typ, raw), nil
	}
}

func typedCell(typ excelize.CellType, raw string) match.Value {
	switch typ {
	case excelize.CellTypeBool:
		return match.Bool(raw == "1" || raw == "TRUE" || raw == "true")
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		if n, err := strconv.ParseFloat(raw, 64); err == nil {
			return match.Number(n)
		}
	}

	return match.Text(raw)
}
