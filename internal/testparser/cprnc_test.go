package testparser

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	suiteerrors "github.com/AndreyAkinshin/suitereport/internal/errors"
)

func TestParseDiffLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		line    string
		want    DiffLine
		wantOK  bool
		wantErr bool
	}{
		{
			name:   "cprnc spacing",
			line:   " RMS TBOT                             2.0000E-03            NORMALIZED  1.0000E-04",
			want:   DiffLine{Variable: "TBOT", Diff: 0.002, NormalizedDiff: 0.0001},
			wantOK: true,
		},
		{
			name:   "variable starting with marker letters",
			line:   "RMS SMP 1.5 NORMALIZED 0.5",
			want:   DiffLine{Variable: "SMP", Diff: 1.5, NormalizedDiff: 0.5},
			wantOK: true,
		},
		{
			name:   "infinite difference",
			line:   "RMS H2OSOI Infinity NORMALIZED Infinity",
			want:   DiffLine{Variable: "H2OSOI", Diff: math.Inf(1), NormalizedDiff: math.Inf(1)},
			wantOK: true,
		},
		{
			name: "unrelated line",
			line: "  diff_test: the two files seem to be DIFFERENT",
		},
		{
			name: "RMS inside a word",
			line: "  FIELDS_RMS summary 3",
		},
		{
			name: "blank",
			line: "",
		},
		{
			name:    "missing normalized marker",
			line:    "RMS TBOT 2.0E-03",
			wantOK:  true,
			wantErr: true,
		},
		{
			name:    "non-numeric diff",
			line:    "RMS TBOT ******** NORMALIZED 1.0",
			wantOK:  true,
			wantErr: true,
		},
		{
			name:    "non-numeric normalized diff",
			line:    "RMS TBOT 1.0 NORMALIZED n/a",
			wantOK:  true,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok, err := ParseDiffLine(tt.line)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDiffLine() error = %v, wantErr %v", err, tt.wantErr)
			}
			if ok != tt.wantOK {
				t.Errorf("ParseDiffLine() ok = %v, want %v", ok, tt.wantOK)
			}
			if tt.wantErr {
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseDiffLine() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseDiffs(t *testing.T) {
	t.Parallel()
	input := strings.Join([]string{
		"  SUMMARY of cprnc:",
		" RMS TBOT                             2.0000E-03            NORMALIZED  1.0000E-04",
		" RMS QBOT                             5.0000E-01            NORMALIZED  3.0000E-02",
		"  diff_test: the two files seem to be DIFFERENT",
	}, "\n")

	got, err := ParseDiffs(strings.NewReader(input), "t1.clm2.h0.nc.cprnc.out", "t1")
	if err != nil {
		t.Fatalf("ParseDiffs() error = %v", err)
	}

	want := []DiffRecord{
		{Test: "t1", Variable: "TBOT", Diff: 0.002, NormalizedDiff: 0.0001},
		{Test: "t1", Variable: "QBOT", Diff: 0.5, NormalizedDiff: 0.03},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseDiffs() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDiffs_NoMarkers(t *testing.T) {
	t.Parallel()
	got, err := ParseDiffs(strings.NewReader("the two files seem to be IDENTICAL\n"), "x", "t1")
	if err != nil {
		t.Fatalf("ParseDiffs() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("ParseDiffs() = %v, want empty", got)
	}
}

func TestParseDiffFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "case.clm2.h0.nc.cprnc.out")
	content := "header\n RMS TBOT 2.0E-03 NORMALIZED 1.0E-04\n RMS TSA abc NORMALIZED 1.0\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := ParseDiffFile(path, "case")
	var pe *suiteerrors.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("ParseDiffFile() error = %v, want *ParseError", err)
	}
	if pe.File != path || pe.Line != 3 {
		t.Errorf("ParseError at %s:%d, want %s:3", pe.File, pe.Line, path)
	}
}

func TestParseDiffFile_Missing(t *testing.T) {
	t.Parallel()
	_, err := ParseDiffFile(filepath.Join(t.TempDir(), "missing.nc.cprnc.out"), "case")
	if got := suiteerrors.GetExitCode(err); got != suiteerrors.ExitInputError {
		t.Errorf("exit code = %d, want %d (err = %v)", got, suiteerrors.ExitInputError, err)
	}
}
