package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/missile-arcade/internal/config"
	"github.com/vovakirdan/missile-arcade/internal/core"
)

var flagKeymap string

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show or change key bindings",
	Long: `Key bindings live in ~/.missile/keymap.yaml. Actions the file leaves
out keep their default keys. Binding a key to one action takes it away
from any other action.

Key names are what the terminal reports: letters, "up", "esc", "enter",
"ctrl+c", "space" for the space bar.

Examples:
  missile keys
  missile keys set fire_left j
  missile keys set pause p esc space
  missile keys reset`,
	Args: cobra.NoArgs,
	RunE: runKeysShow,
}

var keysShowCmd = &cobra.Command{
	Use:   "show",
	Short: "List the keys of every action",
	Args:  cobra.NoArgs,
	RunE:  runKeysShow,
}

var keysSetCmd = &cobra.Command{
	Use:   "set <action> <key>...",
	Short: "Bind keys to an action",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runKeysSet,
}

var keysResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default bindings",
	Args:  cobra.NoArgs,
	RunE:  runKeysReset,
}

func init() {
	keysCmd.PersistentFlags().StringVar(&flagKeymap, "keymap", "", "Keymap file (default ~/.missile/keymap.yaml)")
	keysCmd.AddCommand(keysShowCmd, keysSetCmd, keysResetCmd)
}

// keymapPath returns the file the keys commands and play read.
func keymapPath() string {
	if flagKeymap != "" {
		return flagKeymap
	}
	return config.KeymapPath()
}

func runKeysShow(_ *cobra.Command, _ []string) error {
	km, err := config.LoadKeymap(keymapPath())
	if err != nil {
		logger.Warn("keymap rejected, showing defaults", "err", err)
	}
	bindings, err := km.Resolve()
	if err != nil {
		return err
	}

	for _, a := range core.Actions() {
		keys := make([]string, len(bindings[a]))
		for i, k := range bindings[a] {
			if k == " " {
				k = "space"
			}
			keys[i] = k
		}
		fmt.Printf("  %-12s %s\n", a, strings.Join(keys, ", "))
	}
	return nil
}

func runKeysSet(_ *cobra.Command, args []string) error {
	path := keymapPath()
	if path == "" {
		return errors.New("no home directory for the keymap, pass --keymap")
	}

	km, err := config.LoadKeymap(path)
	if err != nil {
		return err
	}

	keys := args[1:]
	for i, k := range keys {
		if k == "space" {
			keys[i] = " "
		}
	}
	if err := km.Set(args[0], keys); err != nil {
		return err
	}
	if err := config.SaveKeymap(path, km); err != nil {
		return err
	}
	logger.Info("keymap saved", "path", path, "action", args[0])
	return runKeysShow(nil, nil)
}

func runKeysReset(_ *cobra.Command, _ []string) error {
	path := keymapPath()
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove keymap: %w", err)
	}
	fmt.Println("Default key bindings restored.")
	return nil
}
