// Package report renders analysis results for human review.
//
// Writer produces the review workbook: one record per pair, written as two
// rows sharing a pair id, with reviewer columns left blank. WriteSummary
// prints the console listing of groups and score buckets.
//
// Report files are never overwritten. When the preferred name is taken a
// numeric suffix is appended, and the file is created exclusively.
package report
