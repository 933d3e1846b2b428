package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/musou/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, after --config and
--difficulty are applied. The output is valid YAML and can be saved as
~/.musou/config.yaml and edited.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		logger, closeLog, err := newLogger(io.Discard)
		if err != nil {
			return err
		}
		defer closeLog() //nolint:errcheck

		cfg, err := loadConfig(logger)
		if err != nil {
			return err
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), string(data))
		return err
	},
}
