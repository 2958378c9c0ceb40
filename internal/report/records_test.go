package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"attribute-analyzer/internal/match"
)

func TestParseDiffBasis(t *testing.T) {
	tests := []struct {
		in       string
		expected DiffBasis
		wantErr  bool
	}{
		{"", DiffRaw, false},
		{"raw", DiffRaw, false},
		{" Normalized ", DiffNormalized, false},
		{"semantic", "", true},
	}

	for _, tt := range tests {
		got, err := ParseDiffBasis(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}

		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.expected, got, tt.in)
	}
}

func TestBuildRecords(t *testing.T) {
	pairs := match.Pairs{
		{Base: "Color", Candidate: "Colour", Score: 91},
		{Base: "Color", Candidate: "color", Score: 100},
		{Base: "Material", Candidate: "Materials", Score: 94},
		{Base: "Brand", Candidate: "Brands", Score: 91},
	}

	records := BuildRecords(pairs, DiffRaw)
	require.Len(t, records, 4)

	// Input order is untouched.
	assert.Equal(t, "Colour", pairs[0].Candidate)

	expected := []struct {
		id   int
		base string
		cand string
		diff string
	}{
		{1, "Color", "color", "C → c"},
		{2, "Material", "Materials", " → s"},
		{3, "Brand", "Brands", " → s"},
		{4, "Color", "Colour", " → u"},
	}

	for i, e := range expected {
		assert.Equal(t, e.id, records[i].PairID)
		assert.Equal(t, e.base, records[i].Base)
		assert.Equal(t, e.cand, records[i].Candidate)
		assert.Equal(t, e.diff, records[i].DiffText())
	}
}

func TestBuildRecords_NormalizedBasis(t *testing.T) {
	pairs := match.Pairs{{Base: "Net Wt.", Candidate: "net wt", Score: 100}}

	raw := BuildRecords(pairs, DiffRaw)
	assert.NotEmpty(t, raw[0].DiffText())

	normalized := BuildRecords(pairs, DiffNormalized)
	assert.Empty(t, normalized[0].DiffText())
}
