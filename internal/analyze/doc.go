// Package analyze loads attribute labels from tabular files and runs the
// near-duplicate analysis over them.
//
// Supported inputs are Excel workbooks (.xlsx, .xlsm), comma or tab
// separated files (.csv, .tsv) and plain text with one label per line.
// The whole column is read into memory before any comparison starts.
//
// Key types:
//   - SourceOptions: which sheet and column hold the labels, header handling
//   - Source: the non-blank label cells of one file plus load diagnostics
//   - Analyzer: validates settings, loads a Source, runs the matcher
//   - Result: the similarity groups of one run with its threshold and source
package analyze
