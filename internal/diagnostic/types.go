package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"attribute-analyzer/internal/common"
)

// Diagnostics holds all diagnostic information from one analysis run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Source identifies the input file or sheet this relates to (if any).
	Source string
	// Row is the 1-based input row this relates to (0 if none).
	Row int
	// Values are the labels or cell values involved.
	Values []string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// Diagnostic codes.
const (
	CodeBlankCell      = "blank_cell"
	CodeShortRow       = "short_row"
	CodeStringified    = "stringified_value"
	CodeDuplicateLabel = "duplicate_label"
	CodeScanBound      = "scan_bound"
	CodeUnreadableCell = "unreadable_cell"
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, source string, row int, values ...string) {
	d.Errors = append(d.Errors, newDiagnostic(DiagnosticError, code, message, source, row, values))
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, source string, row int, values ...string) {
	d.Warnings = append(d.Warnings, newDiagnostic(DiagnosticWarning, code, message, source, row, values))
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, source string, row int, values ...string) {
	d.Infos = append(d.Infos, newDiagnostic(DiagnosticInfo, code, message, source, row, values))
}

func newDiagnostic(sev DiagnosticSeverity, code, message, source string, row int, values []string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  message,
		Source:   source,
		Row:      row,
		Values:   values,
	}
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Count returns how many diagnostics carry the given code, across severities.
func (d *Diagnostics) Count(code string) int {
	n := 0

	for _, list := range [][]Diagnostic{d.Errors, d.Warnings, d.Infos} {
		for _, diag := range list {
			if diag.Code == code {
				n++
			}
		}
	}

	return n
}

// All returns every diagnostic, errors first.
func (d *Diagnostics) All() []Diagnostic {
	out := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	out = append(out, d.Errors...)
	out = append(out, d.Warnings...)

	return append(out, d.Infos...)
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Source != "" {
		prefix = append(prefix, "["+d.Source+"]")
	}

	if d.Row > 0 {
		prefix = append(prefix, fmt.Sprintf("row %d", d.Row))
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Values) > 0 {
		quoted := make([]string, len(d.Values))
		for i, v := range d.Values {
			quoted[i] = fmt.Sprintf("%q", v)
		}

		msg += " (" + strings.Join(quoted, ", ") + ")"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
