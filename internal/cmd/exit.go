// Package cmd provides command implementations for the forge CLI.
package cmd

// Exit codes reported to the shell.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred,
	// including directory-creation and artifact-write failures.
	ExitGeneralError = 1

	// ExitValidationError indicates a project name or flag failed validation.
	ExitValidationError = 2

	// ExitCancelled indicates the user aborted an interactive prompt.
	ExitCancelled = 130
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}
