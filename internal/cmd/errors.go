package cmd

import "fmt"

// ExitError carries the process exit code and an optional message for
// standard error. It lets RunE report both without printing directly,
// which keeps output capturable in tests.
type ExitError struct {
	Code int
	Msg  string
}

func (e *ExitError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Msg
}
