package testparser

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	suiteerrors "github.com/AndreyAkinshin/suitereport/internal/errors"
)

// Markers of a cprnc difference line:
//
//	RMS TBOT                             2.0000E-03            NORMALIZED  1.0000E-04
const (
	rmsMarker        = "RMS"
	normalizedMarker = "NORMALIZED"
)

// DiffLine is a single parsed RMS line.
type DiffLine struct {
	Variable       string
	Diff           float64
	NormalizedDiff float64
}

// ParseDiffLine parses one line of cprnc output. ok is false for lines that
// are not RMS lines. An RMS line without the NORMALIZED marker or with
// non-numeric values is an error.
func ParseDiffLine(line string) (dl DiffLine, ok bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || fields[0] != rmsMarker {
		return DiffLine{}, false, nil
	}

	before, after, found := strings.Cut(line, normalizedMarker)
	if !found {
		return DiffLine{}, true, errors.Errorf("missing %s marker", normalizedMarker)
	}

	head := strings.Fields(before)
	if len(head) != 3 {
		return DiffLine{}, true, errors.Errorf("expected %s <variable> <diff> before %s, got %d fields",
			rmsMarker, normalizedMarker, len(head))
	}

	diff, err := strconv.ParseFloat(head[2], 64)
	if err != nil {
		return DiffLine{}, true, errors.Wrapf(err, "invalid RMS difference for %s", head[1])
	}
	normalized, err := strconv.ParseFloat(strings.TrimSpace(after), 64)
	if err != nil {
		return DiffLine{}, true, errors.Wrapf(err, "invalid normalized difference for %s", head[1])
	}

	return DiffLine{Variable: head[1], Diff: diff, NormalizedDiff: normalized}, true, nil
}

// ParseDiffs reads cprnc output from r and returns one record per RMS line,
// attributed to test. Output without RMS lines yields no records.
func ParseDiffs(r io.Reader, source, test string) ([]DiffRecord, error) {
	var records []DiffRecord

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		dl, ok, err := ParseDiffLine(line)
		if err != nil {
			return nil, suiteerrors.Parse(source, lineNo, strings.TrimSpace(line), err)
		}
		if !ok {
			continue
		}

		records = append(records, DiffRecord{
			Test:           test,
			Variable:       dl.Variable,
			Diff:           dl.Diff,
			NormalizedDiff: dl.NormalizedDiff,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, suiteerrors.Input(source, err)
	}

	return records, nil
}

// ParseDiffFile parses the cprnc output file at path.
func ParseDiffFile(path, test string) ([]DiffRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, suiteerrors.Input(path, err)
	}
	defer func() { _ = f.Close() }()

	return ParseDiffs(f, path, test)
}
