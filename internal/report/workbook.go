package report

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"attribute-analyzer/internal/analyze"
)

// CommentAuthor signs every cell comment in the workbook.
const CommentAuthor = "Attribute Analyzer"

// Report columns, in order. Columns from ColumnCanonicalKey on are for reviewers.
const (
	ColumnPairID       = "Pair ID"
	ColumnAttribute    = "Attribute"
	ColumnSimilarity   = "Similarity %"
	ColumnDifferences  = "Differences"
	ColumnCanonicalKey = "Proposed Canonical Key"
	ColumnDecision     = "Merge or Keep Separate?"
	ColumnMergeWith    = "Pair ID to merge with"
	ColumnNotes        = "NOTES"
)

// Headers is the header row of the report sheet.
var Headers = []string{
	ColumnPairID, ColumnAttribute, ColumnSimilarity, ColumnDifferences,
	ColumnCanonicalKey, ColumnDecision, ColumnMergeWith, ColumnNotes,
}

// firstReviewerColumn is the 1-based index of ColumnCanonicalKey.
const firstReviewerColumn = 5

var headerNotes = map[string]string{
	ColumnCanonicalKey: "all lowercase, no spaces, only special characters allowed are underscores _",
	ColumnMergeWith:    "please specify if there are multiple pair IDs to merge",
}

// Fill colors.
const (
	colorOddPair  = "F5F5F5"
	colorEvenPair = "FFFFFF"
	colorReviewer = "FFFF00"
)

// numFmtPercent is the built-in "0%" number format.
const numFmtPercent = 9

const maxColumnWidth = 255

// Writer writes review workbooks into Dir.
type Writer struct {
	// Dir is the output directory. Empty means the working directory.
	Dir       string
	DiffBasis DiffBasis
	Logger    *slog.Logger
}

// Write renders res into a new workbook and returns its path.
// The workbook is built completely before the file is created.
func (w *Writer) Write(res *analyze.Result) (string, error) {
	logger := w.Logger
	if logger == nil {
		logger = slog.Default()
	}

	records := BuildRecords(res.Pairs(), w.DiffBasis)

	book, err := Build(res, records)
	if err != nil {
		return "", fmt.Errorf("build report: %w", err)
	}
	defer func() { _ = book.Close() }()

	dir := w.Dir
	if dir == "" {
		dir = "."
	}

	f, err := CreateUnique(dir, OutputName(res.Source, res.Threshold))
	if err != nil {
		return "", err
	}

	path := f.Name()

	if err := save(f, book); err != nil {
		return "", err
	}

	logger.Info("report written",
		"run_id", res.RunID.String(),
		"path", path,
		"pairs", len(records),
	)

	return path, nil
}

// workbookWriter is the serialization half of *excelize.File.
type workbookWriter interface {
	WriteTo(w io.Writer, opts ...excelize.Options) (int64, error)
}

// save writes book into f and closes it. On failure the partial file is removed
// so its name is free for the next run.
func save(f *os.File, book workbookWriter) error {
	path := f.Name()

	_, err := book.WriteTo(f)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}

	if err != nil {
		_ = os.Remove(path)

		return &WriteError{Path: path, Err: err}
	}

	return nil
}

// sheetStyles holds the style ids used by one workbook.
type sheetStyles struct {
	header         int
	reviewerHeader int
	// text and percent are indexed by band: 0 for even pair ids, 1 for odd.
	text    [2]int
	percent [2]int
}

func newSheetStyles(f *excelize.File) (sheetStyles, error) {
	var s sheetStyles
	var err error

	bold := &excelize.Font{Bold: true}

	s.header, err = f.NewStyle(&excelize.Style{Font: bold})
	if err != nil {
		return s, err
	}

	s.reviewerHeader, err = f.NewStyle(&excelize.Style{Font: bold, Fill: solidFill(colorReviewer)})
	if err != nil {
		return s, err
	}

	for band, color := range [2]string{colorEvenPair, colorOddPair} {
		s.text[band], err = f.NewStyle(&excelize.Style{Fill: solidFill(color)})
		if err != nil {
			return s, err
		}

		s.percent[band], err = f.NewStyle(&excelize.Style{Fill: solidFill(color), NumFmt: numFmtPercent})
		if err != nil {
			return s, err
		}
	}

	return s, nil
}

func solidFill(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}}
}

// Build lays out records on a single sheet of a new workbook.
func Build(res *analyze.Result, records []Record) (*excelize.File, error) {
	f := excelize.NewFile()

	ok := false
	defer func() {
		if !ok {
			_ = f.Close()
		}
	}()

	sheet := SheetName(res.Threshold)
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, err
	}

	styles, err := newSheetStyles(f)
	if err != nil {
		return nil, err
	}

	widths := newColumnWidths()

	if err := writeHeader(f, sheet, styles, widths); err != nil {
		return nil, err
	}

	for i, rec := range records {
		row := 2 + 2*i

		if err := writeRecord(f, sheet, row, rec, styles, widths); err != nil {
			return nil, fmt.Errorf("pair %d: %w", rec.PairID, err)
		}
	}

	if err := widths.apply(f, sheet); err != nil {
		return nil, err
	}

	err = f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
		Selection:   []excelize.Selection{{SQRef: "A2", ActiveCell: "A2", Pane: "bottomLeft"}},
	})
	if err != nil {
		return nil, err
	}

	err = f.SetDocProps(&excelize.DocProperties{
		Creator:     CommentAuthor,
		Title:       sheet,
		Subject:     res.Source,
		Identifier:  res.RunID.String(),
		Description: fmt.Sprintf("threshold %s%%, scorer %s, %d pairs", FormatThreshold(res.Threshold), res.Scorer, len(records)),
	})
	if err != nil {
		return nil, err
	}

	ok = true

	return f, nil
}

func writeHeader(f *excelize.File, sheet string, styles sheetStyles, widths columnWidths) error {
	for i, header := range Headers {
		col := i + 1

		axis, err := excelize.CoordinatesToCellName(col, 1)
		if err != nil {
			return err
		}

		if err := f.SetCellStr(sheet, axis, header); err != nil {
			return err
		}

		style := styles.header
		if col >= firstReviewerColumn {
			style = styles.reviewerHeader
		}

		if err := f.SetCellStyle(sheet, axis, axis, style); err != nil {
			return err
		}

		if note, ok := headerNotes[header]; ok {
			if err := addComment(f, sheet, axis, note); err != nil {
				return err
			}
		}

		widths.observe(col, header)
	}

	return nil
}

// writeRecord writes the base row at row and the candidate row below it.
func writeRecord(f *excelize.File, sheet string, row int, rec Record, styles sheetStyles, widths columnWidths) error {
	band := rec.PairID % 2
	diffText := rec.DiffText()
	similarity := float64(rec.Score) / 100

	sides := []struct {
		label string
		parts []string
	}{
		{rec.Base, rec.Differences.SideA()},
		{rec.Candidate, rec.Differences.SideB()},
	}

	for offset, side := range sides {
		r := row + offset

		first, _ := excelize.CoordinatesToCellName(1, r)
		last, _ := excelize.CoordinatesToCellName(len(Headers), r)

		if err := f.SetCellStyle(sheet, first, last, styles.text[band]); err != nil {
			return err
		}

		if err := f.SetCellInt(sheet, first, int64(rec.PairID)); err != nil {
			return err
		}

		labelAxis, _ := excelize.CoordinatesToCellName(2, r)
		if err := f.SetCellStr(sheet, labelAxis, side.label); err != nil {
			return err
		}

		if len(side.parts) > 0 {
			note := "Different parts:\n" + strings.Join(side.parts, ", ")
			if err := addComment(f, sheet, labelAxis, note); err != nil {
				return err
			}
		}

		simAxis, _ := excelize.CoordinatesToCellName(3, r)
		if err := f.SetCellFloat(sheet, simAxis, similarity, -1, 64); err != nil {
			return err
		}

		if err := f.SetCellStyle(sheet, simAxis, simAxis, styles.percent[band]); err != nil {
			return err
		}

		diffAxis, _ := excelize.CoordinatesToCellName(4, r)
		if err := f.SetCellStr(sheet, diffAxis, diffText); err != nil {
			return err
		}

		widths.observe(1, strconv.Itoa(rec.PairID))
		widths.observe(2, side.label)
		widths.observe(3, strconv.Itoa(rec.Score)+"%")
		widths.observe(4, diffText)
	}

	return nil
}

func addComment(f *excelize.File, sheet, axis, text string) error {
	return f.AddComment(sheet, excelize.Comment{
		Cell:   axis,
		Author: CommentAuthor,
		Paragraph: []excelize.RichTextRun{
			{Text: CommentAuthor + ":", Font: &excelize.Font{Bold: true}},
			{Text: "\n" + text},
		},
	})
}

// columnWidths tracks the longest text per 1-based column.
type columnWidths map[int]int

func newColumnWidths() columnWidths {
	return make(columnWidths, len(Headers))
}

func (c columnWidths) observe(col int, text string) {
	c[col] = max(c[col], utf8.RuneCountInString(text))
}

func (c columnWidths) apply(f *excelize.File, sheet string) error {
	for col := 1; col <= len(Headers); col++ {
		name, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return err
		}

		width := float64(min(c[col]+2, maxColumnWidth))
		if err := f.SetColWidth(sheet, name, name, width); err != nil {
			return err
		}
	}

	return nil
}
