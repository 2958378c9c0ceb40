// Package diagnostic provides structured warnings, errors, and
// informational notes collected while loading and analysing a label column.
//
// Key capabilities:
//   - Skipped blank cells and unreadable rows
//   - Non-text cells that were stringified before comparison
//   - Exact duplicate labels folded into their first occurrence
//   - Run-level notes such as the configured scan bound
package diagnostic
