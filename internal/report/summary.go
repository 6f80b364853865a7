package report

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/sets/treeset"

	"github.com/AndreyAkinshin/suitereport/internal/suite"
)

// Summary counts phase results by (result, phase). Every combination of an
// observed result and an observed phase has an entry, zero if never seen.
type Summary struct {
	phases  *treeset.Set
	results *treeset.Set
	tests   *treeset.Set
	counts  *treemap.Map // result -> *treemap.Map(phase -> int)
}

// NewSummary pivots the result table.
func NewSummary(rows []suite.ResultRow) *Summary {
	s := &Summary{
		phases:  treeset.NewWithStringComparator(),
		results: treeset.NewWithStringComparator(),
		tests:   treeset.NewWithStringComparator(),
		counts:  treemap.NewWithStringComparator(),
	}

	for _, row := range rows {
		s.phases.Add(row.Phase)
		s.results.Add(row.Result)
		s.tests.Add(row.Name)
	}

	for _, result := range s.results.Values() {
		byPhase := treemap.NewWithStringComparator()
		for _, phase := range s.phases.Values() {
			byPhase.Put(phase, 0)
		}
		s.counts.Put(result, byPhase)
	}

	for _, row := range rows {
		byPhase := s.row(row.Result)
		n, _ := byPhase.Get(row.Phase)
		byPhase.Put(row.Phase, n.(int)+1)
	}

	return s
}

// Count returns the number of rows with the given result and phase.
func (s *Summary) Count(result, phase string) int {
	byPhase := s.row(result)
	if byPhase == nil {
		return 0
	}
	n, ok := byPhase.Get(phase)
	if !ok {
		return 0
	}
	return n.(int)
}

// Phases returns the distinct phases in ascending order.
func (s *Summary) Phases() []string {
	return toStrings(s.phases.Values())
}

// Results returns the distinct result codes in ascending order.
func (s *Summary) Results() []string {
	return toStrings(s.results.Values())
}

// NumTests returns the number of distinct tests with at least one status line.
func (s *Summary) NumTests() int {
	return s.tests.Size()
}

func (s *Summary) row(result string) *treemap.Map {
	v, ok := s.counts.Get(result)
	if !ok {
		return nil
	}
	return v.(*treemap.Map)
}

func toStrings(values []interface{}) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.(string)
	}
	return out
}
