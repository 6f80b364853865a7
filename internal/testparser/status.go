package testparser

import (
	"bufio"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	suiteerrors "github.com/AndreyAkinshin/suitereport/internal/errors"
)

// DefaultStatusFile is the per-test status file written by the harness.
const DefaultStatusFile = "TestStatus"

const timePrefix = "time="

// StatusLine is a single parsed status line.
type StatusLine struct {
	Result  string
	Phase   string
	Time    float64
	HasTime bool // true if the line carried a time= token for a timing phase
}

// StatusParser parses TestStatus files.
// Lines look like:
//
//	PASS ERS_D.f10_f10_mg37.I2000Clm50BgcCrop.derecho_intel.clm-default RUN time=42
//	FAIL ERS_D.f10_f10_mg37.I2000Clm50BgcCrop.derecho_intel.clm-default BASELINE
type StatusParser struct {
	FileName string
	Timing   TimingPhases
}

// NewStatusParser creates a parser for the default file name and timing phases.
func NewStatusParser() *StatusParser {
	return &StatusParser{
		FileName: DefaultStatusFile,
		Timing:   DefaultTimingPhases(),
	}
}

// ParseLine parses one whitespace-delimited status line. The result is
// field 0 and the phase is field 2. For timing phases a trailing time=
// token is parsed; its absence is not an error.
func (p *StatusParser) ParseLine(line string) (StatusLine, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return StatusLine{}, errors.Errorf("expected at least 3 fields, got %d", len(fields))
	}

	sl := StatusLine{Result: fields[0], Phase: fields[2]}
	if !p.isTimingPhase(sl.Phase) {
		return sl, nil
	}

	value, ok := strings.CutPrefix(fields[len(fields)-1], timePrefix)
	if !ok {
		return sl, nil
	}
	seconds, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return StatusLine{}, errors.Wrapf(err, "invalid time for phase %s", sl.Phase)
	}
	sl.Time = seconds
	sl.HasTime = true
	return sl, nil
}

// Parse reads status lines from r. Blank lines are skipped. The first
// malformed line aborts parsing with a ParseError naming source and line.
func (p *StatusParser) Parse(r io.Reader, source string) (*StatusResult, error) {
	result := &StatusResult{Timing: Timing{LibTime: 0, BuildTime: 0, RunTime: 0}}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		sl, err := p.ParseLine(line)
		if err != nil {
			return nil, suiteerrors.Parse(source, lineNo, strings.TrimSpace(line), err)
		}

		result.Phases = append(result.Phases, PhaseResult{Phase: sl.Phase, Result: sl.Result})
		if sl.HasTime {
			p.assignTiming(&result.Timing, sl)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, suiteerrors.Input(source, err)
	}

	return result, nil
}

// ParseDir parses the status file inside testDir. A missing status file
// yields no phases and zero timings.
func (p *StatusParser) ParseDir(testDir string) (*StatusResult, error) {
	path := filepath.Join(testDir, p.FileName)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &StatusResult{}, nil
		}
		return nil, suiteerrors.Input(path, err)
	}
	defer func() { _ = f.Close() }()

	return p.Parse(f, path)
}

func (p *StatusParser) isTimingPhase(phase string) bool {
	return phase == p.Timing.SharedLib || phase == p.Timing.ModelBuild || phase == p.Timing.Run
}

// assignTiming stores the line's time in the matching field; a repeated
// phase overwrites the earlier value.
func (p *StatusParser) assignTiming(t *Timing, sl StatusLine) {
	switch sl.Phase {
	case p.Timing.SharedLib:
		t.LibTime = sl.Time
	case p.Timing.ModelBuild:
		t.BuildTime = sl.Time
	case p.Timing.Run:
		t.RunTime = sl.Time
	}
}
