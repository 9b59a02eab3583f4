package cmd

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// reencodeCmd represents the reencode command
var reencodeCmd = &cobra.Command{
	Use:   "reencode <input> <output>",
	Short: "Decode a message file and write it back out",
	Long: `Decode a message file and immediately encode it again. The output
has its record table sorted by hash and its strings in file order.

Example:
  messagetool reencode message_us.bin message_us.new.bin`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return reencode(logger, args[0], args[1], resolveCodeTable())
	},
}

func reencode(log zerolog.Logger, input, output, tablePath string) error {
	codec, err := loadTextCodec(log, tablePath)
	if err != nil {
		return err
	}

	store, err := readMessages(log, input, codec)
	if err != nil {
		return err
	}

	if err := writeMessages(log, output, store, codec); err != nil {
		return err
	}

	log.Info().Str("path", output).Int("messages", store.Len()).Msg("done")
	return nil
}

func init() {
	reencodeCmd.Flags().StringVarP(&codeTablePath, "code-table", "t", "", "YAML code table used for text conversion")
	rootCmd.AddCommand(reencodeCmd)
}
