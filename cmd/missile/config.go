package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/missile-arcade/internal/config"
	"github.com/vovakirdan/missile-arcade/internal/games/missile"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game config",
	Long: `Print the game config after the search order and the difficulty
preset are applied, or the built-in defaults with --defaults.

Search order: --config, ~/.missile/configs/missile.yaml,
./configs/missile.yaml, built-in defaults.

Examples:
  missile config
  missile config --difficulty hard
  missile config --defaults > ~/.missile/configs/missile.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := os.Stdout.Write(config.GetDefaultYAML("missile"))
		return err
	}

	cfg, err := missile.CheckConfig()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
