package cli

import "errors"

// ExitError allows commands to exit with a specific exit code.
// If Err is nil, no error message is printed.
type ExitError struct {
	Code int
	Err  error
}

// ExitCode returns the process exit code.
func (e ExitError) ExitCode() int { return e.Code }

// Unwrap returns the wrapped error.
func (e ExitError) Unwrap() error { return e.Err }

func (e ExitError) Error() string {
	if e.Err == nil {
		return ""
	}

	return e.Err.Error()
}

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return 1
}
