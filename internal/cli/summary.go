package cli

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/AndreyAkinshin/suitereport/internal/config"
	"github.com/AndreyAkinshin/suitereport/internal/output"
	"github.com/AndreyAkinshin/suitereport/internal/report"
	"github.com/AndreyAkinshin/suitereport/internal/suite"
)

// printSummary prints the per-phase tallies and the failed baseline
// comparisons of rep.
func printSummary(out *output.Writer, rep *report.Report, cfg *config.Config) {
	out.SummaryHeader("Test Results")
	out.SummaryItem("Suite", rep.Root)
	out.SummaryItem("Tests", fmt.Sprintf("%d", rep.Summary.NumTests()))

	for _, phase := range rep.Summary.Phases() {
		label := phaseLabel(phase)
		value := phaseCounts(rep.Summary, phase)
		switch {
		case rep.Summary.Count(cfg.FailResult, phase) > 0:
			out.SummaryFailed(label, value)
		case rep.Summary.Count(cfg.PendResult, phase) > 0:
			out.SummaryPending(label, value)
		default:
			out.SummaryPassed(label, value)
		}
	}

	if len(rep.BaselineFailures) == 0 {
		return
	}
	variables := map[string]int{}
	for _, d := range rep.MaxDiffs {
		variables[d.Test]++
	}
	out.SummarySectionLabel("Baseline failures:")
	for _, path := range rep.BaselineFailures {
		name := suite.TestName(path)
		out.SummaryFailed("  "+name, fmt.Sprintf("%d variables differ", variables[name]))
	}
}

// phaseLabel turns a phase code such as SHAREDLIB_BUILD into "Sharedlib Build".
func phaseLabel(phase string) string {
	titleCase := cases.Title(language.English)
	return titleCase.String(strings.ReplaceAll(phase, "_", " "))
}

// phaseCounts lists the non-zero result counts of a phase, e.g. "2 PASS, 1 FAIL".
func phaseCounts(s *report.Summary, phase string) string {
	var parts []string
	for _, result := range s.Results() {
		if n := s.Count(result, phase); n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, result))
		}
	}
	return strings.Join(parts, ", ")
}
