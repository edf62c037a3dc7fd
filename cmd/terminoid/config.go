package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/terminoid/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration terminoid would play with, after applying
the config file, the difficulty preset and any flag overrides.

Search order for the config file:
  --config path
  ~/.terminoid/config.yaml
  ./configs/terminoid.yaml
  built-in defaults`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := effectiveConfig()
		if err != nil {
			return err
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}
