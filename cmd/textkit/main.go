// textkit runs the text primitives from the command line: URL extraction,
// multi-pattern scans, keyword checks, base64 and markdown rendering.
package main

import (
	"fmt"
	"os"

	"github.com/corey/textkit/cmd/textkit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		code := cmd.ExitCode(err)
		if code < 0 {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			code = 2
		}
		os.Exit(code)
	}
}
