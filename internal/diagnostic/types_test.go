package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticSeverity_String(t *testing.T) {
	tests := []struct {
		sev  DiagnosticSeverity
		want string
	}{
		{DiagnosticInfo, "info"},
		{DiagnosticWarning, "warning"},
		{DiagnosticError, "error"},
		{DiagnosticSeverity(42), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.sev.String())
	}
}

func TestDiagnostic_String(t *testing.T) {
	tests := []struct {
		name string
		d    Diagnostic
		want string
	}{
		{
			name: "message only",
			d:    Diagnostic{Message: "3 blank label cell(s) skipped"},
			want: "3 blank label cell(s) skipped",
		},
		{
			name: "code and source",
			d:    Diagnostic{Code: CodeBlankCell, Message: "3 blank label cell(s) skipped", Source: "attrs.csv"},
			want: "[attrs.csv]: [blank_cell] 3 blank label cell(s) skipped",
		},
		{
			name: "row and values",
			d: Diagnostic{
				Code:    CodeStringified,
				Message: "non-text value compared as text",
				Source:  "Sheet1",
				Row:     7,
				Values:  []string{"42"},
			},
			want: `[Sheet1] row 7: [stringified_value] non-text value compared as text ("42")`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.d.String())
		})
	}
}

func TestDiagnostics_AddAndCount(t *testing.T) {
	var d Diagnostics

	d.AddInfo(CodeDuplicateLabel, "label repeated", "attrs.csv", 0, "2", "6")
	d.AddInfo(CodeBlankCell, "1 blank label cell(s) skipped", "attrs.csv", 0)
	d.AddWarning(CodeScanBound, "large scan", "attrs.csv", 0)

	assert.True(t, d.IsValid())
	assert.False(t, d.HasErrors())
	require.NoError(t, d.Error())

	assert.Equal(t, 1, d.Count(CodeDuplicateLabel))
	assert.Equal(t, 1, d.Count(CodeScanBound))
	assert.Zero(t, d.Count(CodeShortRow))

	require.Len(t, d.Infos, 2)
	assert.Equal(t, DiagnosticInfo, d.Infos[0].Severity)
	assert.Equal(t, []string{"2", "6"}, d.Infos[0].Values)
	assert.Equal(t, DiagnosticWarning, d.Warnings[0].Severity)
}

func TestDiagnostics_Error(t *testing.T) {
	var d Diagnostics

	d.AddError("bad_source", "unreadable", "a.csv", 0)
	d.AddError("bad_source", "unreadable", "b.csv", 3)

	assert.True(t, d.HasErrors())
	assert.False(t, d.IsValid())
	assert.EqualError(t, d.Error(), "[a.csv]: [bad_source] unreadable; [b.csv] row 3: [bad_source] unreadable")
}

func TestDiagnostics_MergeAndAll(t *testing.T) {
	var a, b Diagnostics

	a.AddInfo(CodeBlankCell, "blank", "", 0)
	b.AddWarning(CodeScanBound, "large", "", 0)
	b.AddError("x", "broken", "", 0)

	a.Merge(b)

	all := a.All()
	require.Len(t, all, 3)
	assert.Equal(t, DiagnosticError, all[0].Severity)
	assert.Equal(t, DiagnosticWarning, all[1].Severity)
	assert.Equal(t, DiagnosticInfo, all[2].Severity)
}
