package cmd

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// isStdoutTTY returns true if stdout is connected to a terminal.
func isStdoutTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// isStdinPipe returns true if stdin is a pipe (not a terminal).
func isStdinPipe() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice == 0
}

// resolveColor determines whether to use color output based on flags and TTY status.
// colorFlag is the --color value: "auto", "always", or "never".
func resolveColor(colorFlag string, noColorFlag bool) bool {
	if noColorFlag {
		return false
	}
	switch colorFlag {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		return isStdoutTTY()
	}
}

// stdinReader returns the command's input when it is redirected or piped, nil otherwise.
func stdinReader(cmd *cobra.Command) io.Reader {
	in := cmd.InOrStdin()
	if in != os.Stdin || isStdinPipe() {
		return in
	}
	return nil
}

// readText returns args joined by spaces, or all of stdin when no args are given.
func readText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	in := stdinReader(cmd)
	if in == nil {
		return "", errNoInput
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// readSource returns the contents of file, or all of stdin when file is empty.
func readSource(cmd *cobra.Command, file string) ([]byte, error) {
	if file != "" && file != "-" {
		return os.ReadFile(file)
	}
	in := stdinReader(cmd)
	if in == nil {
		return nil, errNoInput
	}
	return io.ReadAll(in)
}
