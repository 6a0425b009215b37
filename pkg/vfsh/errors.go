package vfsh

import (
	"errors"
	"strings"
)

// Sentinel errors for the failure modes of tree operations and command
// dispatch. These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	_, err := session.Eval(line)
//	if errors.Is(err, vfsh.ErrNotFound) {
//	    // Handle a missing path
//	}
var (
	// ErrInvalidName indicates a node name that is empty or contains a
	// path separator.
	ErrInvalidName = errors.New("invalid name")

	// ErrAlreadyExists indicates a sibling with the same name already
	// exists in the target directory.
	ErrAlreadyExists = errors.New("already exists")

	// ErrNotFound indicates a path segment that does not resolve.
	ErrNotFound = errors.New("not found")

	// ErrNotADirectory indicates a file where a directory was required.
	ErrNotADirectory = errors.New("not a directory")

	// ErrNotAFile indicates a directory where a file was required.
	ErrNotAFile = errors.New("not a file")

	// ErrRootRemoval indicates an attempt to remove the root directory.
	ErrRootRemoval = errors.New("cannot remove root directory")

	// ErrUnknownCommand indicates a command token with no dispatch entry.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrMalformedArguments indicates wrong arity or malformed command
	// arguments, such as an echo redirect with no target.
	ErrMalformedArguments = errors.New("malformed arguments")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrScriptFailed indicates a script run stopped on a failing command.
	ErrScriptFailed = errors.New("script failed")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrScriptFailed):
		return ExitScriptFailed
	case errors.Is(err, ErrMalformedArguments), errors.Is(err, ErrUnknownCommand):
		return ExitUsageError
	}

	// Cobra reports flag and arity problems as plain errors; classify the
	// common patterns as usage errors.
	errStr := err.Error()
	if strings.Contains(errStr, "unknown flag") ||
		strings.Contains(errStr, "unknown shorthand flag") ||
		strings.Contains(errStr, "unknown command") ||
		strings.Contains(errStr, "accepts 1 arg(s)") ||
		strings.Contains(errStr, "missing required argument") ||
		strings.Contains(errStr, "invalid argument") {
		return ExitUsageError
	}

	return ExitGeneralError
}
