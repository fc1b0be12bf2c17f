package cmd

import "errors"

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

var errNoInput = errors.New("no input: pass text as arguments or pipe it on stdin")

// paint wraps s in an ANSI code when color is on.
func paint(on bool, code, s string) string {
	if !on {
		return s
	}
	return code + s + colorReset
}

// useColor resolves the persistent --color/--no-color flags.
func useColor() bool {
	return resolveColor(rootColor, rootNoColor)
}
