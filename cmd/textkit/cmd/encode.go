package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var encodeDataURL bool

var encodeCmd = &cobra.Command{
	Use:   "encode [file]",
	Short: "Base64-encode a file or stdin",
	Long: "Encodes bytes with the standard padded base64 alphabet.\n" +
		"With --data-url the input is treated as an HTML document and printed as a data: URL.",
	Args: cobra.MaximumNArgs(1),
	RunE: runEncode,
}

func init() {
	encodeCmd.Flags().BoolVar(&encodeDataURL, "data-url", false, "Wrap HTML input in a data:text/html URL")
}

func runEncode(cmd *cobra.Command, args []string) error {
	var file string
	if len(args) == 1 {
		file = args[0]
	}
	data, err := readSource(cmd, file)
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if encodeDataURL {
		fmt.Fprintln(cmd.OutOrStdout(), a.HTMLDataURL(string(data)))
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), a.Base64Encode(data))
	return nil
}
