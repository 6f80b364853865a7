package report

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AndreyAkinshin/suitereport/internal/suite"
	"github.com/AndreyAkinshin/suitereport/internal/testparser"
)

// fakeDiffs records the directories it was asked for and returns fixed records.
type fakeDiffs struct {
	records []testparser.DiffRecord
	err     error
	got     []string
	called  bool
}

func (f *fakeDiffs) CollectDiffs(testDirs []string) ([]testparser.DiffRecord, error) {
	f.called = true
	f.got = testDirs
	return f.records, f.err
}

func sampleTables() *suite.Tables {
	return &suite.Tables{
		Root: "/suite",
		Results: []suite.ResultRow{
			{Phase: "RUN", Result: "PASS", Name: "a", Path: "/suite/a.GC"},
			{Phase: "BASELINE", Result: "PASS", Name: "a", Path: "/suite/a.GC"},
			{Phase: "RUN", Result: "PASS", Name: "b", Path: "/suite/b.GC"},
			{Phase: "BASELINE", Result: "FAIL", Name: "b", Path: "/suite/b.GC"},
			{Phase: "BASELINE", Result: "FAIL", Name: "b", Path: "/suite/b.GC"},
			{Phase: "RUN", Result: "PEND", Name: "c", Path: "/suite/c.GC"},
			{Phase: "BASELINE", Result: "FAIL", Name: "c", Path: "/suite/c.GC"},
		},
		Timings: []suite.TimingRow{
			{Name: "a", Timing: testparser.Timing{RunTime: 1}},
			{Name: "b"},
			{Name: "c"},
		},
	}
}

func TestBuild(t *testing.T) {
	t.Parallel()
	diffs := &fakeDiffs{records: []testparser.DiffRecord{
		{Test: "b", Variable: "TBOT", Diff: 0.002, NormalizedDiff: 0.0001},
		{Test: "b", Variable: "TBOT", Diff: 0.001, NormalizedDiff: 0.0003},
		{Test: "b", Variable: "QBOT", Diff: 0.5, NormalizedDiff: 0.02},
		{Test: "a", Variable: "TSA", Diff: 1, NormalizedDiff: 2},
	}}

	rep, err := Build(sampleTables(), diffs, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []string{"/suite/b.GC", "/suite/c.GC"}, diffs.got)
	assert.Equal(t, diffs.got, rep.BaselineFailures)

	assert.Equal(t, []suite.ResultRow{
		{Phase: "BASELINE", Result: "FAIL", Name: "b", Path: "/suite/b.GC"},
		{Phase: "BASELINE", Result: "FAIL", Name: "b", Path: "/suite/b.GC"},
		{Phase: "BASELINE", Result: "FAIL", Name: "c", Path: "/suite/c.GC"},
		{Phase: "RUN", Result: "PEND", Name: "c", Path: "/suite/c.GC"},
	}, rep.NonPassing)

	assert.Equal(t, []MaxDiff{
		{Test: "a", Variable: "TSA", Diff: 1, NormalizedDiff: 2},
		{Test: "b", Variable: "QBOT", Diff: 0.5, NormalizedDiff: 0.02},
		{Test: "b", Variable: "TBOT", Diff: 0.002, NormalizedDiff: 0.0003},
	}, rep.MaxDiffs)

	assert.Equal(t, 3, rep.Summary.NumTests())
	assert.Equal(t, 3, rep.Summary.Count("FAIL", "BASELINE"))
}

func TestBuild_InfiniteDiffsExcludedFromMax(t *testing.T) {
	t.Parallel()
	diffs := &fakeDiffs{records: []testparser.DiffRecord{
		{Test: "b", Variable: "TBOT", Diff: math.Inf(1), NormalizedDiff: 0.1},
		{Test: "b", Variable: "TBOT", Diff: 0.5, NormalizedDiff: math.Inf(-1)},
		{Test: "b", Variable: "H2OSOI", Diff: math.Inf(1), NormalizedDiff: math.Inf(1)},
	}}

	rep, err := Build(sampleTables(), diffs, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, rep.MaxDiffs, 2)

	h2osoi, tbot := rep.MaxDiffs[0], rep.MaxDiffs[1]
	assert.Equal(t, "H2OSOI", h2osoi.Variable)
	assert.True(t, math.IsNaN(h2osoi.Diff))
	assert.True(t, math.IsNaN(h2osoi.NormalizedDiff))

	assert.Equal(t, "TBOT", tbot.Variable)
	assert.Equal(t, 0.5, tbot.Diff)
	assert.Equal(t, 0.1, tbot.NormalizedDiff)
}

func TestBuild_NoBaselineFailures(t *testing.T) {
	t.Parallel()
	tables := &suite.Tables{
		Root:    "/suite",
		Results: []suite.ResultRow{{Phase: "RUN", Result: "PASS", Name: "a", Path: "/suite/a"}},
	}
	diffs := &fakeDiffs{}

	rep, err := Build(tables, diffs, DefaultOptions())
	require.NoError(t, err)
	assert.True(t, diffs.called)
	assert.Empty(t, diffs.got)
	assert.Empty(t, rep.NonPassing)
	assert.Empty(t, rep.MaxDiffs)
}

func TestBuild_DiffErrorPropagates(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	_, err := Build(sampleTables(), &fakeDiffs{err: boom}, DefaultOptions())
	assert.ErrorIs(t, err, boom)
}

func TestBuild_CustomCodes(t *testing.T) {
	t.Parallel()
	opts := DefaultOptions()
	opts.BaselinePhase = "COMPARE"
	opts.PassResult = "OK"
	opts.FailResult = "BAD"
	tables := &suite.Tables{
		Root: "/suite",
		Results: []suite.ResultRow{
			{Phase: "COMPARE", Result: "BAD", Name: "a", Path: "/suite/a"},
			{Phase: "BASELINE", Result: "FAIL", Name: "b", Path: "/suite/b"},
			{Phase: "RUN", Result: "OK", Name: "b", Path: "/suite/b"},
		},
	}
	diffs := &fakeDiffs{}

	rep, err := Build(tables, diffs, opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"/suite/a"}, diffs.got)
	assert.Len(t, rep.NonPassing, 2)
}
