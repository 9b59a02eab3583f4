/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ssargent/pmdmessage/pkg/config"
	"github.com/ssargent/pmdmessage/pkg/keyword"
)

var (
	cfgFile  string
	logLevel string

	cfg      *config.Config
	keywords *keyword.Keywords
	logger   = zerolog.Nop()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "messagetool",
	Short: "Read, edit and write SIR0 message files",
	Long: `messagetool converts SIR0 message files to an editable YAML catalog
and back, and can re-encode a file in place of the game's own writer.

Examples:
  messagetool list message_us.bin
  messagetool export message_us.bin message_us.yaml
  messagetool import message_us.yaml message_us.bin --code-table codes.yaml`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = loadConfig(cfgFile, cmd.Flags().Changed("config"))
		if err != nil {
			return err
		}

		level := cfg.Logging.Level
		if cmd.Flags().Changed("log-level") {
			level = logLevel
		}
		logger, err = newLogger(os.Stderr, level)
		if err != nil {
			return err
		}

		keywords, err = cfg.KeywordTable()
		if err != nil {
			return fmt.Errorf("invalid keyword configuration: %w", err)
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", config.GetDefaultConfigPath(), "path to the configuration file")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info", "log level (trace, debug, info, warn, error)")
}

// loadConfig reads the configuration at path. A missing file is only an
// error when the path was given explicitly.
func loadConfig(path string, explicit bool) (*config.Config, error) {
	if !explicit && !config.ConfigExists(path) {
		return config.DefaultConfig(), nil
	}

	c, err := config.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return c, nil
}

// newLogger creates a console logger writing to w at the named level
func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
		Level(lvl).
		With().
		Timestamp().
		Logger(), nil
}
