package cmd

import (
	"fmt"

	"github.com/corey/textkit/internal/app"
	"github.com/spf13/cobra"
)

var (
	profileIterations int
	profileSave       bool
	profileLabel      string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Time every operation over a sample workload",
	Long: "Runs the built-in command-parsing corpus through all operations and prints timing stats.\n" +
		"With --save the run is stored in .textkit/textkit.db for later comparison.",
	Args: cobra.NoArgs,
	RunE: runProfile,
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved profiling runs",
	Args:  cobra.NoArgs,
	RunE:  runProfileList,
}

var profileShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a saved profiling run",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileShow,
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved profiling run",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileDelete,
}

func init() {
	f := profileCmd.Flags()
	f.IntVarP(&profileIterations, "iterations", "n", 100, "Passes over the corpus")
	f.BoolVar(&profileSave, "save", false, "Store the run")
	f.StringVarP(&profileLabel, "label", "l", "", "Label for a saved run")

	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileDeleteCmd)
}

func runProfile(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	run, err := a.RunProfile(app.DefaultCorpus(), profileIterations)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if err := a.Profiler.WriteReport(out); err != nil {
		return err
	}
	if !profileSave {
		return nil
	}
	if err := a.SaveRun(run, profileLabel); err != nil {
		return err
	}
	fmt.Fprintf(out, "saved run %s\n", paint(useColor(), colorGreen, run.ID))
	return nil
}

func runProfileList(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ids, err := a.ListRuns()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(ids) == 0 {
		fmt.Fprintln(out, "no saved runs")
		return nil
	}
	color := useColor()
	for _, id := range ids {
		run, err := a.LoadRun(id)
		if err != nil {
			return err
		}
		if run == nil {
			continue
		}
		label := run.Label
		if label == "" {
			label = "-"
		}
		fmt.Fprintf(out, "%s  %-20s  iterations=%d\n", paint(color, colorCyan, id), label, run.Iterations)
	}
	return nil
}

func runProfileShow(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	run, err := a.LoadRun(args[0])
	if err != nil {
		return err
	}
	if run == nil {
		return fmt.Errorf("no saved run %q", args[0])
	}
	return app.WriteRunReport(cmd.OutOrStdout(), run)
}

func runProfileDelete(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.DeleteRun(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
	return nil
}
