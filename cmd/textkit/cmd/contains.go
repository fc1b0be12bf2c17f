package cmd

import (
	"fmt"

	"github.com/corey/textkit/internal/domain/textproc"
	"github.com/spf13/cobra"
)

var (
	containsKeywords []string
	containsQuiet    bool
)

var containsCmd = &cobra.Command{
	Use:   "contains -k <kw[,kw...]> [text ...]",
	Short: "Check whether any keyword occurs in the text",
	Long:  "Case-insensitive substring check. Prints true or false; exit status is 1 when no keyword occurs.",
	Args:  cobra.ArbitraryArgs,
	RunE:  runContains,
}

func init() {
	f := containsCmd.Flags()
	f.StringSliceVarP(&containsKeywords, "keyword", "k", nil, "Keywords (comma-separated or repeated)")
	f.BoolVarP(&containsQuiet, "quiet", "q", false, "Quiet mode (exit code only)")
}

func runContains(cmd *cobra.Command, args []string) error {
	text, err := readText(cmd, args)
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	found := a.ContainsAny(text, textproc.NewKeywordSet(containsKeywords...))
	if !containsQuiet {
		fmt.Fprintln(cmd.OutOrStdout(), found)
	}
	if !found {
		return errNoMatch
	}
	return nil
}
