package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration",
	Long:  "Shows the effective settings after defaults, TEXTKIT_* environment variables and flags.",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	color := useColor()
	on := func(b bool) string {
		if b {
			return paint(color, colorGreen, "on")
		}
		return paint(color, colorYellow, "off")
	}
	automaton := "disabled"
	if a.Config.KeywordAutomaton > 0 {
		automaton = fmt.Sprintf(">= %d keywords", a.Config.KeywordAutomaton)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, paint(color, colorBold, "textkit config"))
	fmt.Fprintf(out, "  Root:          %s\n", a.Paths.Root)
	fmt.Fprintf(out, "  DB:            %s\n", a.Paths.DB)
	fmt.Fprintf(out, "  Log level:     %s\n", a.Config.LogLevel)
	fmt.Fprintf(out, "  Log format:    %s\n", a.Config.LogFormat)
	fmt.Fprintf(out, "  Pattern cache: %s\n", on(a.Config.PatternCache))
	fmt.Fprintf(out, "  Automaton:     %s\n", automaton)
	fmt.Fprintf(out, "  Debug:         %s\n", on(a.Config.Debug))
	return nil
}
