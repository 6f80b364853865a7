// Package report aggregates collected suite tables into a summary and renders
// it as markdown.
package report

import (
	"sort"

	"github.com/emirpasic/gods/sets/treeset"
	"go.uber.org/zap"

	"github.com/AndreyAkinshin/suitereport/internal/suite"
	"github.com/AndreyAkinshin/suitereport/internal/testparser"
)

// DiffCollector extracts baseline differences for a set of test directories.
type DiffCollector interface {
	CollectDiffs(testDirs []string) ([]testparser.DiffRecord, error)
}

// Options controls which phase and result codes drive the report, and how
// summary lines are colored.
type Options struct {
	BaselinePhase string
	PassResult    string
	FailResult    string
	PendResult    string
	FailColor     string
	PendColor     string
	Logger        *zap.Logger
}

// DefaultOptions returns the options matching the test harness defaults.
func DefaultOptions() Options {
	return Options{
		BaselinePhase: testparser.PhaseBaseline,
		PassResult:    testparser.ResultPass,
		FailResult:    testparser.ResultFail,
		PendResult:    testparser.ResultPend,
		FailColor:     "red",
		PendColor:     "orange",
		Logger:        zap.NewNop(),
	}
}

// Report is the aggregated view of one suite.
type Report struct {
	Root       string
	Summary    *Summary
	NonPassing []suite.ResultRow
	MaxDiffs   []MaxDiff
	Timings    []suite.TimingRow
	// BaselineFailures lists the unique, sorted directories of tests whose
	// baseline comparison failed.
	BaselineFailures []string

	opts Options
}

// Build aggregates the collected tables. Differences are gathered from the
// tests whose baseline phase failed.
func Build(tables *suite.Tables, diffs DiffCollector, opts Options) (*Report, error) {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	rep := &Report{
		Root:    tables.Root,
		Summary: NewSummary(tables.Results),
		Timings: tables.Timings,
		opts:    opts,
	}

	rep.BaselineFailures = baselineFailures(tables.Results, opts)
	opts.Logger.Debug("Baseline failures", zap.Int("tests", len(rep.BaselineFailures)))

	records, err := diffs.CollectDiffs(rep.BaselineFailures)
	if err != nil {
		return nil, err
	}
	rep.MaxDiffs = maxDiffs(maskInfinite(records))
	rep.NonPassing = nonPassing(tables.Results, opts.PassResult)

	return rep, nil
}

func baselineFailures(rows []suite.ResultRow, opts Options) []string {
	paths := treeset.NewWithStringComparator()
	for _, row := range rows {
		if row.Phase == opts.BaselinePhase && row.Result == opts.FailResult {
			paths.Add(row.Path)
		}
	}
	return toStrings(paths.Values())
}

// nonPassing selects rows whose result is not pass, ordered by phase and then
// result. Rows that tie keep test name order.
func nonPassing(rows []suite.ResultRow, pass string) []suite.ResultRow {
	out := []suite.ResultRow{}
	for _, row := range rows {
		if row.Result != pass {
			out = append(out, row)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Phase != out[j].Phase {
			return out[i].Phase < out[j].Phase
		}
		return out[i].Result < out[j].Result
	})
	return out
}
