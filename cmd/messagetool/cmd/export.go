package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ssargent/pmdmessage/pkg/catalog"
	"github.com/ssargent/pmdmessage/pkg/keyword"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <input.bin> <output.yaml>",
	Short: "Export a message file to an editable YAML catalog",
	Long: `Export every message of a message file to a YAML catalog. Control
characters are written as [NAME] keywords, a literal '[' as \[ and a
literal '\' as \\.

Example:
  messagetool export message_us.bin message_us.yaml`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return exportCatalog(logger, args[0], args[1], resolveCodeTable(), keywords)
	},
}

func exportCatalog(log zerolog.Logger, input, output, tablePath string, kw *keyword.Keywords) error {
	codec, err := loadTextCodec(log, tablePath)
	if err != nil {
		return err
	}

	store, err := readMessages(log, input, codec)
	if err != nil {
		return err
	}

	c := catalog.FromStore(store, kw)
	err = writeAtomic(output, func(f *os.File) error {
		return c.Write(f)
	})
	if err != nil {
		return fmt.Errorf("failed to export %s: %w", output, err)
	}

	log.Info().Str("path", output).Int("messages", len(c.Messages)).Msg("done")
	return nil
}

func init() {
	exportCmd.Flags().StringVarP(&codeTablePath, "code-table", "t", "", "YAML code table used for text conversion")
	rootCmd.AddCommand(exportCmd)
}
