package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-chomp/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration chomp would use, after the search order
(--config, ~/.chomp/configs/chomp.yaml, ./configs/chomp.yaml, built-in)
and the global flag overrides. With --defaults it prints the built-in
file, a good starting point for your own.

Examples:
  chomp config
  chomp config --defaults > ~/.chomp/configs/chomp.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in defaults")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagConfigDefaults {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	cfg, err := settings()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
