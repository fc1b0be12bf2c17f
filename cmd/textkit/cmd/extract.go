package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract <pattern> [text ...]",
	Short: "Print capture group 1 of the first match",
	Long: "Lowercases the text, finds the first match of pattern and prints its first capture group.\n" +
		"Exit status is 1 when nothing matches and 2 on an invalid pattern.",
	Args: cobra.MinimumNArgs(1),
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	text, err := readText(cmd, args[1:])
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	url, ok, err := a.ExtractURL(text, args[0])
	if err != nil {
		return err
	}
	if !ok {
		return errNoMatch
	}
	fmt.Fprintln(cmd.OutOrStdout(), url)
	return nil
}
