package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ssargent/pmdmessage/pkg/catalog"
	"github.com/ssargent/pmdmessage/pkg/keyword"
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <input.yaml> <output.bin>",
	Short: "Build a message file from a YAML catalog",
	Long: `Build a message file from a YAML catalog written by export. Entries
sharing a hash keep the position of the first and the text of the last.

Example:
  messagetool import message_us.yaml message_us.bin`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return importCatalog(logger, args[0], args[1], resolveCodeTable(), keywords)
	},
}

func importCatalog(log zerolog.Logger, input, output, tablePath string, kw *keyword.Keywords) error {
	codec, err := loadTextCodec(log, tablePath)
	if err != nil {
		return err
	}

	log.Info().Str("path", input).Msg("reading the catalog")
	f, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}
	c, err := catalog.Read(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", input, err)
	}

	store, err := c.ToStore(kw)
	if err != nil {
		return fmt.Errorf("failed to import %s: %w", input, err)
	}

	if err := writeMessages(log, output, store, codec); err != nil {
		return err
	}

	log.Info().Str("path", output).Int("messages", store.Len()).Msg("done")
	return nil
}

func init() {
	importCmd.Flags().StringVarP(&codeTablePath, "code-table", "t", "", "YAML code table used for text conversion")
	rootCmd.AddCommand(importCmd)
}
