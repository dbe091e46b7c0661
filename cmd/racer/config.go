package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-racer/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the racer configuration as YAML after the search order and
--difficulty have been applied.

Use --defaults to print the built-in file, a starting point for
~/.racer/configs/racer.yaml.

Examples:
  racer config
  racer config --difficulty hard
  racer config --defaults > ~/.racer/configs/racer.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in default config")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagConfigDefaults {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
