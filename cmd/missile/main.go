// missile is a terminal missile-defense game.
//
// Usage:
//
//	missile play [variant]   - Play (picker menu when no variant is given)
//	missile list             - List variants
//	missile scores [variant] - Print the best runs
//	missile board            - Browse runs in the scoreboard
//	missile serve            - Start SSH server for remote play
//	missile keys             - Show or change key bindings
//	missile config           - Print the effective game config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.missile/scores.db)
//	--log <path>          - Write diagnostics to a file
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal, hard, fixed
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/missile-arcade/internal/config"
	"github.com/vovakirdan/missile-arcade/internal/games/missile"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagLogPath    string
	flagConfig     string
	flagDifficulty string
	flagVerbose    bool
)

// logger is set up before any subcommand runs.
var logger = log.New(io.Discard)

// logFile is closed after the command finishes.
var logFile *os.File

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "missile",
	Short: "Missile Defense - protect your cities from the terminal",
	Long: `Missile Defense is a terminal arcade game. Hostile missiles fall on
six buildings and three launch installations; shoot them down with
interceptors whose blasts destroy anything they touch.

Available commands:
  play     - Play a variant (picker menu without arguments)
  list     - Show all variants
  scores   - Print the best runs
  board    - Interactive scoreboard
  serve    - Start SSH server for remote play
  keys     - Show or change key bindings
  config   - Print the effective game config

Examples:
  missile play
  missile play missile_classic --difficulty hard
  missile serve --ssh :2222
  missile keys set fire_left j
  missile scores missile`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.missile/scores.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write diagnostics to this file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug messages")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(configCmd)
}

// setup builds the logger and hands the game its config flags.
func setup(_ *cobra.Command, _ []string) error {
	var w io.Writer = os.Stderr
	level := log.WarnLevel
	if flagLogPath != "" {
		if err := os.MkdirAll(filepath.Dir(flagLogPath), 0o750); err != nil {
			return fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		logFile = f
		w = f
		level = log.InfoLevel
	}
	if flagVerbose {
		level = log.DebugLevel
	}

	logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "missile",
		Level:           level,
	})

	if flagDifficulty != "" {
		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			return err
		}
	}
	missile.SetConfigPath(flagConfig)
	missile.SetDifficultyPreset(flagDifficulty)
	missile.SetLogger(logger.WithPrefix("missile/game"))
	return nil
}
