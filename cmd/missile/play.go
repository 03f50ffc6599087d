package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/missile-arcade/internal/core"
	"github.com/vovakirdan/missile-arcade/internal/games/missile"
	"github.com/vovakirdan/missile-arcade/internal/platform/audio"
	"github.com/vovakirdan/missile-arcade/internal/platform/tui"
	"github.com/vovakirdan/missile-arcade/internal/registry"
	"github.com/vovakirdan/missile-arcade/internal/storage"
)

var (
	flagMute   bool
	flagVolume float64
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing. Without a variant a picker menu opens and you return
to it after each game.

Controls (see 'missile keys' for your bindings):
  Mouse             - Aim; left/middle/right button fires that installation
  WASD/Arrows       - Move the crosshair
  1 2 3 / Z X C     - Fire from the left, middle or right installation
  P/Esc             - Pause menu
  O                 - Options (sound, difficulty, keys)
  R                 - Restart after game over
  Q/Ctrl+C          - Quit
  Ctrl+S            - Save a screenshot to ~/.missile/screenshots

Difficulty options:
  easy   - Start at lowest difficulty, faster reload, smaller volleys
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, slower reload, larger volleys
  fixed  - No progression, stays at config's initial level

Examples:
  missile play
  missile play missile --difficulty easy
  missile play missile_classic --config ./my-missile.yaml
  missile play --mute --log ./missile.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound off")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.4, "Cue volume from 0 to 1")
}

func runPlay(_ *cobra.Command, args []string) error {
	if len(args) == 1 && !registry.Exists(args[0]) {
		return fmt.Errorf("unknown variant %q, run 'missile list' to see them", args[0])
	}

	// Refuse to start on a config the engine cannot lay out.
	if _, err := missile.CheckConfig(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database, scores will not be saved", "err", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	keys, err := tui.LoadKeyMapper(keymapPath())
	if err != nil {
		logger.Warn("keymap rejected, using defaults", "err", err)
	}

	player := audio.NewPlayer(flagVolume)
	sound := !flagMute
	if sound {
		if err := player.Init(); err != nil {
			logger.Warn("no audio device, playing silently", "err", err)
			sound = false
		}
	}
	defer player.Close()

	cfg := runtimeConfig()
	cfg.Sound = sound

	opts := tui.Options{
		Store:  store,
		Sound:  player,
		Keys:   keys,
		Logger: logger.WithPrefix("missile/tui"),
	}

	if len(args) == 1 {
		return playOne(args[0], cfg, opts)
	}
	return playFromMenu(cfg, opts)
}

// runtimeConfig sizes the game to the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func playOne(id string, cfg core.RuntimeConfig, opts tui.Options) error {
	game, err := registry.Create(id)
	if err != nil {
		return err
	}
	logger.Info("starting", "game", id, "seed", cfg.Seed, "difficulty", flagDifficulty)
	if err := tui.Run(game, cfg, opts); err != nil {
		return fmt.Errorf("run %s: %w", id, err)
	}
	return nil
}

func playFromMenu(cfg core.RuntimeConfig, opts tui.Options) error {
	for {
		result, err := tui.RunMenu(opts.Store, cfg, opts.Keys)
		if err != nil {
			return err
		}

		cfg = result.Config

		switch result.Choice {
		case tui.ChoiceScores:
			goBack, err := tui.RunScoreboard(opts.Store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		case tui.ChoicePlay:
		default:
			return nil
		}

		// A fresh seed per game unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		if err := playOne(result.GameID, cfg, opts); err != nil {
			logger.Error("game ended with error", "err", err)
		}
	}
}
