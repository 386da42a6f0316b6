package cmd

// Exit codes for the hit CLI
const (
	// ExitSuccess indicates the server answered with a 2xx status
	ExitSuccess = 0

	// ExitHTTPFailure indicates the server answered with a non-2xx status
	ExitHTTPFailure = 1

	// ExitValidationError indicates the URL failed structural validation
	ExitValidationError = 2

	// ExitNetworkError indicates a transport-level failure
	ExitNetworkError = 4

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)
