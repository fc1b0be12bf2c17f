package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	markdownWatch bool
	markdownOut   string
)

var markdownCmd = &cobra.Command{
	Use:   "markdown [file]",
	Short: "Render **bold** and *italic* spans as HTML",
	Long: "Converts **text** to <strong> and *text* to <em>; everything else passes through.\n" +
		"With --watch the file is re-rendered on every save until interrupted.",
	Args: cobra.MaximumNArgs(1),
	RunE: runMarkdown,
}

func init() {
	f := markdownCmd.Flags()
	f.BoolVarP(&markdownWatch, "watch", "w", false, "Re-render when the file changes")
	f.StringVarP(&markdownOut, "out", "o", "", "Write HTML to this file instead of stdout")
}

func runMarkdown(cmd *cobra.Command, args []string) error {
	var file string
	if len(args) == 1 {
		file = args[0]
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	emit := func(html string) error {
		if markdownOut != "" {
			return os.WriteFile(markdownOut, []byte(html), 0644)
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), html)
		return err
	}

	if !markdownWatch {
		src, err := readSource(cmd, file)
		if err != nil {
			return err
		}
		return emit(a.MarkdownToHTML(string(src)))
	}

	if file == "" || file == "-" {
		return fmt.Errorf("--watch needs a file argument")
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	color := useColor()
	return a.WatchMarkdown(ctx, file, func(path, html string) {
		if err := emit(html); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "write %s: %v\n", markdownOut, err)
			return
		}
		fmt.Fprintln(cmd.ErrOrStderr(), paint(color, colorGray, "rendered "+path))
	})
}
