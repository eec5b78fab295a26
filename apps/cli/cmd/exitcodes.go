package cmd

// Exit codes for resultspec CLI
const (
	// ExitSuccess indicates all checks passed
	ExitSuccess = 0

	// ExitCheckFailure indicates one or more checks failed
	ExitCheckFailure = 1

	// ExitParseError indicates a scenario parsing error
	ExitParseError = 2

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)
