package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ssargent/pmdmessage/pkg/keyword"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list <input.bin>",
	Short: "List the messages of a message file",
	Long: `List every message of a message file with its hash and unk field,
in the order the strings appear in the file.

Example:
  messagetool list message_us.bin`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return listMessages(logger, cmd.OutOrStdout(), args[0], resolveCodeTable(), keywords)
	},
}

func listMessages(log zerolog.Logger, out io.Writer, input, tablePath string, kw *keyword.Keywords) error {
	codec, err := loadTextCodec(log, tablePath)
	if err != nil {
		return err
	}

	store, err := readMessages(log, input, codec)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "HASH\tUNK\tTEXT")
	for _, msg := range store.Messages() {
		fmt.Fprintf(w, "0x%08X\t%d\t%q\n", msg.Hash, msg.Unk, kw.Decode(msg.Text))
	}
	return w.Flush()
}

func init() {
	listCmd.Flags().StringVarP(&codeTablePath, "code-table", "t", "", "YAML code table used for text conversion")
	rootCmd.AddCommand(listCmd)
}
