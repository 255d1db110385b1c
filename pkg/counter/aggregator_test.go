package counter

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResults() []FileResult {
	return []FileResult{
		{Path: "a.go", Ext: "go", Seq: 0, Counts: Counts{Code: 10, Comment: 2, Blank: 1, Total: 13}},
		{Path: "b.go", Ext: "go", Seq: 1, Counts: Counts{Code: 25, Comment: 5, Blank: 3, Total: 33}},
		{Path: "c.go", Ext: "go", Seq: 2, Counts: Counts{Code: 25, Comment: 1, Blank: 0, Total: 26}},
		{Path: "d.py", Ext: "py", Seq: 3, Counts: Counts{Code: 7, Comment: 0, Blank: 2, Total: 9}},
		{Path: "e.py", Ext: "py", Seq: 4, Counts: Counts{Code: 7, Comment: 3, Blank: 0, Total: 10}},
	}
}

func TestFoldTotals(t *testing.T) {
	report := newReport(false)
	for _, fr := range sampleResults() {
		report.fold(fr)
	}

	assert.Equal(t, 74, report.Code)
	assert.Equal(t, 11, report.Comment)
	assert.Equal(t, 6, report.Blank)
	assert.Equal(t, 91, report.Total)
	assert.Equal(t, 5, report.Files)

	require.Contains(t, report.Extensions, "go")
	require.Contains(t, report.Extensions, "py")
	assert.Equal(t, 60, report.Extensions["go"].Code)
	assert.Equal(t, 14, report.Extensions["py"].Code)
	assert.Equal(t, 3, report.Extensions["go"].Files)
	assert.Equal(t, 2, report.Extensions["py"].Files)

	// Grand totals equal the sum over the extension summaries.
	sumCode := 0
	for _, s := range report.Extensions {
		sumCode += s.Code
	}
	assert.Equal(t, report.Code, sumCode)
}

func TestFoldIsOrderInsensitive(t *testing.T) {
	results := sampleResults()

	reference := newReport(true)
	for _, fr := range results {
		reference.fold(fr)
	}

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := append([]FileResult(nil), results...)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		report := newReport(true)
		for _, fr := range shuffled {
			report.fold(fr)
		}

		assert.Equal(t, reference.Code, report.Code)
		assert.Equal(t, reference.Files, report.Files)
		for ext, refSummary := range reference.Extensions {
			summary := report.Extensions[ext]
			require.NotNil(t, summary)
			assert.Equal(t, refSummary.Code, summary.Code)
			assert.Equal(t, refSummary.LongestFile, summary.LongestFile,
				"longest-file tie-break must follow traversal order, not fold order")
			assert.Equal(t, refSummary.LongestCode, summary.LongestCode)
		}
	}
}

func TestLongestFileTieBreak(t *testing.T) {
	// b.go and c.go both have 25 code lines; b.go has the lower traversal
	// sequence so it must win even when c.go is folded first.
	report := newReport(true)
	results := sampleResults()
	report.fold(results[2]) // c.go
	report.fold(results[1]) // b.go
	report.fold(results[0]) // a.go

	assert.Equal(t, "b.go", report.Extensions["go"].LongestFile)
	assert.Equal(t, 25, report.Extensions["go"].LongestCode)
}

func TestLongestFileStrictlyGreaterReplaces(t *testing.T) {
	report := newReport(true)
	report.fold(FileResult{Path: "small.go", Ext: "go", Seq: 0, Counts: Counts{Code: 1, Total: 1}})
	report.fold(FileResult{Path: "big.go", Ext: "go", Seq: 1, Counts: Counts{Code: 2, Total: 2}})

	assert.Equal(t, "big.go", report.Extensions["go"].LongestFile)
}

func TestInsightsDisabledSkipsLongestTracking(t *testing.T) {
	report := newReport(false)
	for _, fr := range sampleResults() {
		report.fold(fr)
	}

	assert.Empty(t, report.Extensions["go"].LongestFile)
}

func TestSkipNeverTouchesSummaries(t *testing.T) {
	report := newReport(false)
	report.skip("broken.go", assert.AnError)

	assert.Equal(t, 1, report.SkippedFiles)
	assert.Contains(t, report.Errors, "broken.go")
	assert.Equal(t, 0, report.Files)
	assert.Empty(t, report.Extensions)
}
