package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestReportError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ReportError
		expected string
	}{
		{
			name:     "message only",
			err:      &ReportError{Message: "something failed"},
			expected: "something failed",
		},
		{
			name:     "with path",
			err:      &ReportError{Path: "/suite", Message: "cannot read input"},
			expected: "/suite: cannot read input",
		},
		{
			name:     "with path and cause",
			err:      &ReportError{Path: "/suite", Message: "cannot read input", Cause: errors.New("permission denied")},
			expected: "/suite: cannot read input: permission denied",
		},
		{
			name:     "cause without path",
			err:      &ReportError{Message: "write report", Cause: errors.New("disk full")},
			expected: "write report: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestReportError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(cause, "wrapper")

	if got := err.Unwrap(); got != cause {
		t.Errorf("Unwrap() = %v, want %v", got, cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is() = false, want true")
	}

	errNoCause := New("no cause")
	if got := errNoCause.Unwrap(); got != nil {
		t.Errorf("Unwrap() = %v, want nil", got)
	}
}

func TestParseError(t *testing.T) {
	cause := errors.New("expected at least 3 fields, got 1")
	err := Parse("/suite/t1/TestStatus", 4, "PASS", cause)

	want := `/suite/t1/TestStatus:4: expected at least 3 fields, got 1 (line "PASS")`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is() = false, want true")
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"plain error", errors.New("boom"), ExitRuntimeError},
		{"runtime", New("boom"), ExitRuntimeError},
		{"config", Configf("bad key %q", "x"), ExitConfigError},
		{"input", Input("/suite", errors.New("missing")), ExitInputError},
		{"parse", Parse("f", 1, "x", errors.New("bad")), ExitInputError},
		{"wrapped parse", fmt.Errorf("collect: %w", Parse("f", 1, "x", errors.New("bad"))), ExitInputError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.want {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
