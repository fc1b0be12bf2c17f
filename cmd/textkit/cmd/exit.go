package cmd

import "fmt"

// exitStatus is returned by commands to signal a specific exit code.
// Same convention as grep: 0=found, 1=not found, 2=error.
type exitStatus struct{ code int }

func (e exitStatus) Error() string {
	switch e.code {
	case 0:
		return ""
	case 1:
		return "no match"
	default:
		return fmt.Sprintf("exit %d", e.code)
	}
}

var errNoMatch = exitStatus{code: 1}

// ExitCode extracts the exit code from an exitStatus error.
// Returns -1 if the error is not an exitStatus.
func ExitCode(err error) int {
	if es, ok := err.(exitStatus); ok {
		return es.code
	}
	return -1
}
