package cli

// Exit codes for the genovar process.
const (
	// ExitSuccess indicates the session ended normally, by menu choice 0 or end of input.
	ExitSuccess = 0

	// ExitError indicates startup failed.
	// Use for: configuration errors, connection errors, schema provisioning errors.
	// Per-operation failures inside a session never change the exit code.
	ExitError = 1
)
