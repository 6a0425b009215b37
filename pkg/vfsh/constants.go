package vfsh

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess      = 0  // Session or script completed successfully
	ExitGeneralError = 1  // Unknown or unclassified error
	ExitUsageError   = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic        = 3  // Internal panic (unexpected crash)
	ExitConfigError  = 10 // Invalid configuration
	ExitScriptFailed = 20 // A scripted command failed in --strict mode
)

const (
	// Separator is the path separator recognized in virtual paths.
	Separator = "/"

	// DefaultPrompt is the prompt rendered before each interactive command.
	DefaultPrompt = "$"

	// DefaultHistorySize is the number of input lines the interactive
	// session keeps for history cycling.
	DefaultHistorySize = 500

	// MaxOutputPreviewLength is the maximum number of characters of command
	// output included in verbose log lines. This prevents overwhelming the
	// console when catting large files.
	MaxOutputPreviewLength = 200
)
