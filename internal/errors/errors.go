// Package errors provides structured error types and exit codes for suitereport.
package errors

import (
	"errors"
	"fmt"
)

// Exit codes returned by the CLI.
const (
	ExitSuccess      = 0 // Success
	ExitRuntimeError = 1 // Runtime error (report could not be written, etc.)
	ExitConfigError  = 2 // Configuration or usage error
	ExitInputError   = 3 // Suite input is unreadable or malformed
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindConfig
	KindInput
	KindParse
)

// ReportError is the base error type for suitereport.
type ReportError struct {
	Kind    ErrorKind
	Message string
	Path    string // File or directory the error refers to, if any
	Cause   error  // Underlying error
}

func (e *ReportError) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", e.Path, msg)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *ReportError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *ReportError) ExitCode() int {
	switch e.Kind {
	case KindConfig:
		return ExitConfigError
	case KindInput, KindParse:
		return ExitInputError
	default:
		return ExitRuntimeError
	}
}

// New creates a new runtime error.
func New(message string) *ReportError {
	return &ReportError{
		Kind:    KindRuntime,
		Message: message,
	}
}

// Newf creates a new runtime error with formatting.
func Newf(format string, args ...interface{}) *ReportError {
	return New(fmt.Sprintf(format, args...))
}

// Config creates a new configuration error.
func Config(message string) *ReportError {
	return &ReportError{
		Kind:    KindConfig,
		Message: message,
	}
}

// Configf creates a new configuration error with formatting.
func Configf(format string, args ...interface{}) *ReportError {
	return Config(fmt.Sprintf(format, args...))
}

// Input creates an error for an unreadable suite input.
func Input(path string, cause error) *ReportError {
	return &ReportError{
		Kind:    KindInput,
		Message: "cannot read input",
		Path:    path,
		Cause:   cause,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) *ReportError {
	return &ReportError{
		Kind:    KindRuntime,
		Message: message,
		Cause:   err,
	}
}

// ParseError reports a malformed line in a status or comparison file.
type ParseError struct {
	File  string
	Line  int    // 1-based line number
	Text  string // Offending line, trimmed
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %v (line %q)", e.File, e.Line, e.Cause, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for malformed input.
func (e *ParseError) ExitCode() int {
	return ExitInputError
}

// Parse creates a ParseError for the given file position.
func Parse(file string, line int, text string, cause error) *ParseError {
	return &ParseError{
		File:  file,
		Line:  line,
		Text:  text,
		Cause: cause,
	}
}

// GetExitCode returns the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var coder interface{ ExitCode() int }
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return ExitRuntimeError
}
