package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/ezauto/internal/logger"
)

// Hinter is implemented by errors that carry a follow-up suggestion for the user
type Hinter interface {
	Hint() string
}

// Coder is implemented by errors that map to a specific process exit code
type Coder interface {
	ExitCode() int
}

// Format formats an error message with a consistent "Error: " prefix.
// If any error in the chain implements Hinter, its hint is appended on a second line.
func Format(err error) string {
	if err == nil {
		return ""
	}
	msg := fmt.Sprintf("Error: %v", err)
	var h Hinter
	if stderrors.As(err, &h) && h.Hint() != "" {
		msg += "\n  Hint: " + h.Hint()
	}
	return msg
}

// ExitCode returns the exit code for err: 0 for nil, the Coder's code if present, otherwise 1
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var c Coder
	if stderrors.As(err, &c) {
		return c.ExitCode()
	}
	return 1
}

// Fatal logs an error and exits the program with the error's exit code
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(ExitCode(err))
	}
}
