// Package suitereport provides public constants for tools that run the
// suitereport CLI, such as CI wrappers.
package suitereport

// Exit codes returned by the suitereport CLI.
const (
	// ExitSuccess indicates the report was written.
	ExitSuccess = 0

	// ExitFailure indicates a runtime failure (report or metrics file not writable, etc.).
	ExitFailure = 1

	// ExitConfigError indicates a usage or configuration error.
	ExitConfigError = 2

	// ExitInputError indicates an unreadable suite root or a malformed status or
	// comparison file. No report is written.
	ExitInputError = 3
)
