package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	scanPatterns []string
	scanCount    bool
)

var scanCmd = &cobra.Command{
	Use:   "scan -e <pattern> [-e <pattern> ...] [text ...]",
	Short: "Report the first match of every pattern",
	Long: "Lowercases the text and prints one line per matching pattern, in the order given:\n" +
		"  <pattern>\\t<match>\n" +
		"Any invalid pattern aborts the scan with exit status 2.",
	Args: cobra.ArbitraryArgs,
	RunE: runScan,
}

func init() {
	f := scanCmd.Flags()
	f.StringArrayVarP(&scanPatterns, "regexp", "e", nil, "Pattern to scan for (repeatable)")
	f.BoolVarP(&scanCount, "count", "c", false, "Print only the number of matching patterns")
}

func runScan(cmd *cobra.Command, args []string) error {
	if len(scanPatterns) == 0 {
		return fmt.Errorf("at least one -e pattern is required")
	}
	text, err := readText(cmd, args)
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	matches, err := a.FindAllPatterns(text, scanPatterns)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if scanCount {
		fmt.Fprintln(out, len(matches))
	} else {
		color := useColor()
		for _, m := range matches {
			fmt.Fprintf(out, "%s\t%s\n", paint(color, colorCyan, m.Pattern), m.Match)
		}
	}
	if len(matches) == 0 {
		return errNoMatch
	}
	return nil
}
