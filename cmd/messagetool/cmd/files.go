package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/ssargent/pmdmessage/pkg/codetable"
	"github.com/ssargent/pmdmessage/pkg/message"
)

// codeTablePath is shared by every subcommand's --code-table flag
var codeTablePath string

// textCodec holds the optional code table. Both fields stay nil when no
// table is configured so the codec falls back to plain UTF-16.
type textCodec struct {
	dec codetable.Decoder
	enc codetable.Encoder
}

// loadTextCodec loads the code table at path, or returns the plain UTF-16
// codec when path is empty.
func loadTextCodec(log zerolog.Logger, path string) (textCodec, error) {
	if path == "" {
		return textCodec{}, nil
	}

	log.Info().Str("path", path).Msg("reading the code table")
	table, err := codetable.Load(path)
	if err != nil {
		return textCodec{}, err
	}
	log.Debug().Int("entries", table.Len()).Msg("code table loaded")
	return textCodec{dec: table, enc: table}, nil
}

// resolveCodeTable prefers the --code-table flag over the configured table
func resolveCodeTable() string {
	if codeTablePath != "" {
		return codeTablePath
	}
	if cfg != nil {
		return cfg.CodeTable
	}
	return ""
}

// readMessages decodes the message file at path
func readMessages(log zerolog.Logger, path string, codec textCodec) (*message.Store, error) {
	log.Info().Str("path", path).Msg("decoding")

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open message file: %w", err)
	}
	defer f.Close()

	store, err := message.Load(f, codec.dec)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	log.Debug().Str("path", path).Int("messages", store.Len()).Msg("decoded")
	return store, nil
}

// writeMessages encodes store into the message file at path
func writeMessages(log zerolog.Logger, path string, store *message.Store, codec textCodec) error {
	log.Info().Str("path", path).Int("messages", store.Len()).Msg("encoding")

	err := writeAtomic(path, func(f *os.File) error {
		return store.Write(f, codec.enc)
	})
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}

// writeAtomic writes through a temporary file next to path and renames it
// into place once write succeeds. On failure nothing is left at path.
func writeAtomic(path string, write func(f *os.File) error) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpPath := tmp.Name()

	if err := write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temporary file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to move output into place: %w", err)
	}
	return nil
}
