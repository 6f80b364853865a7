package report

import (
	"math"

	"github.com/emirpasic/gods/maps/treemap"

	"github.com/AndreyAkinshin/suitereport/internal/testparser"
)

// MaxDiff is the largest difference reported for one variable of one test.
// NaN marks a cell with no finite value.
type MaxDiff struct {
	Test           string
	Variable       string
	Diff           float64
	NormalizedDiff float64
}

// maskInfinite returns a copy of records with infinite values replaced by NaN
// so they drop out of the max aggregation.
func maskInfinite(records []testparser.DiffRecord) []testparser.DiffRecord {
	out := make([]testparser.DiffRecord, len(records))
	for i, r := range records {
		if math.IsInf(r.Diff, 0) {
			r.Diff = math.NaN()
		}
		if math.IsInf(r.NormalizedDiff, 0) {
			r.NormalizedDiff = math.NaN()
		}
		out[i] = r
	}
	return out
}

// maxDiffs pivots records into one row per (test, variable), ordered by test
// and then variable. NaN values are skipped.
func maxDiffs(records []testparser.DiffRecord) []MaxDiff {
	byTest := treemap.NewWithStringComparator()

	for _, r := range records {
		v, ok := byTest.Get(r.Test)
		if !ok {
			v = treemap.NewWithStringComparator()
			byTest.Put(r.Test, v)
		}
		byVar := v.(*treemap.Map)

		cell, ok := byVar.Get(r.Variable)
		if !ok {
			cell = &MaxDiff{Test: r.Test, Variable: r.Variable, Diff: math.NaN(), NormalizedDiff: math.NaN()}
			byVar.Put(r.Variable, cell)
		}
		m := cell.(*MaxDiff)
		m.Diff = nanMax(m.Diff, r.Diff)
		m.NormalizedDiff = nanMax(m.NormalizedDiff, r.NormalizedDiff)
	}

	var out []MaxDiff
	for _, v := range byTest.Values() {
		for _, cell := range v.(*treemap.Map).Values() {
			out = append(out, *cell.(*MaxDiff))
		}
	}
	return out
}

// nanMax returns the larger of cur and v, treating NaN as missing.
func nanMax(cur, v float64) float64 {
	if math.IsNaN(v) {
		return cur
	}
	if math.IsNaN(cur) || v > cur {
		return v
	}
	return cur
}
