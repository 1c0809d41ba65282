package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game configuration",
	Long: `Print the built-in configuration as YAML.

Save it as ~/.invaders/configs/invaders.yaml (or pass it with --config)
and edit the values you want to change; missing keys keep their defaults.

Examples:
  invaders config > ~/.invaders/configs/invaders.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	},
}
