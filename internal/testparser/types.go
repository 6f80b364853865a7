// Package testparser parses the per-test output files of a regression suite:
// TestStatus files and cprnc comparison reports.
package testparser

// Phase names and result codes written by the test harness.
const (
	PhaseSharedLibBuild = "SHAREDLIB_BUILD"
	PhaseModelBuild     = "MODEL_BUILD"
	PhaseRun            = "RUN"
	PhaseBaseline       = "BASELINE"

	ResultPass = "PASS"
	ResultFail = "FAIL"
	ResultPend = "PEND"
)

// PhaseResult is one (phase, result) line of a status file.
type PhaseResult struct {
	Phase  string
	Result string
}

// Timing holds the build and run times of a test in seconds.
// Phases that were never reported stay at zero.
type Timing struct {
	LibTime   float64
	BuildTime float64
	RunTime   float64
}

// TimingPhases names the status phases that carry a time= token.
type TimingPhases struct {
	SharedLib  string
	ModelBuild string
	Run        string
}

// DefaultTimingPhases returns the phase names used by the test harness.
func DefaultTimingPhases() TimingPhases {
	return TimingPhases{
		SharedLib:  PhaseSharedLibBuild,
		ModelBuild: PhaseModelBuild,
		Run:        PhaseRun,
	}
}

// StatusResult is the parsed content of one test's status file.
type StatusResult struct {
	Phases []PhaseResult
	Timing Timing
}

// DiffRecord is one variable difference reported by a comparison file.
type DiffRecord struct {
	Test           string
	Variable       string
	Diff           float64
	NormalizedDiff float64
}
