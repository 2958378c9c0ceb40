package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"attribute-analyzer/internal/analyze"
	"attribute-analyzer/internal/match"
)

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteSummary(&buf, sampleResult()))

	wide := strings.Repeat("=", 80)
	narrow := strings.Repeat("-", 40)

	expected := strings.Join([]string{
		"",
		"Potential similar attributes found:",
		wide,
		"",
		"Base attribute: Color",
		"Similar to:",
		"  - color (similarity: 100%)",
		"  - Colour (similarity: 91%)",
		narrow,
		"",
		"Base attribute: Material",
		"Similar to:",
		"  - Materials (similarity: 94%)",
		narrow,
		"",
		"Summary by Similarity Percentage:",
		wide,
		"",
		"100% Similarity (1 pairs):",
		"  1. 'Color' ↔ 'color'",
		"",
		"94% Similarity (1 pairs):",
		"  1. 'Material' ↔ 'Materials'",
		"",
		"91% Similarity (1 pairs):",
		"  1. 'Color' ↔ 'Colour'",
		"",
		wide,
		"Total number of similar pairs found: 3",
		wide,
		"",
	}, "\n")

	assert.Equal(t, expected, buf.String())
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleResult())

	assert.Equal(t, 3, s.Pairs)
	assert.Equal(t, 1, s.Exact)
	assert.InDelta(t, (91+100+94)/3.0, s.Average, 1e-9)
	assert.Equal(t, 1, s.Histogram[19])
	assert.Equal(t, 2, s.Histogram[18])

	empty := Summarize(&analyze.Result{})
	assert.Zero(t, empty.Pairs)
	assert.Zero(t, empty.Average)
}

func TestWriteStats(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteStats(&buf, Summarize(sampleResult())))

	out := buf.String()
	assert.Contains(t, out, "Total Similar Pairs: 3")
	assert.Contains(t, out, "Average Similarity:  95.0%")
	assert.Contains(t, out, "100% Matches:        1")
	assert.Contains(t, out, " 95-100% ")

	buf.Reset()
	require.NoError(t, WriteStats(&buf, Stats{}))
	assert.Equal(t, "No similar attributes found with the current threshold.\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteSummary_WriteError(t *testing.T) {
	err := WriteSummary(failingWriter{}, sampleResult())
	assert.EqualError(t, err, "disk full")
}

func TestSortedMatches(t *testing.T) {
	in := []match.Match{{Candidate: "b", Score: 90}, {Candidate: "a", Score: 90}, {Candidate: "c", Score: 95}}

	out := sortedMatches(in)
	assert.Equal(t, []match.Match{{Candidate: "c", Score: 95}, {Candidate: "a", Score: 90}, {Candidate: "b", Score: 90}}, out)
	assert.Equal(t, "b", in[0].Candidate)
}
