package missile

import (
	"fmt"

	"github.com/vovakirdan/missile-arcade/internal/config"
	"github.com/vovakirdan/missile-arcade/internal/games/missile/sim"
)

// menuItem is one selectable line of a menu screen.
type menuItem int

const (
	itemPlay menuItem = iota
	itemOptions
	itemQuit
	itemSound
	itemDifficulty
	itemBack
	itemResume
	itemMainMenu
	itemRestart
)

var menus = map[sim.State][]menuItem{
	sim.StateMainMenu:    {itemPlay, itemOptions, itemQuit},
	sim.StateOptionsMenu: {itemSound, itemDifficulty, itemBack},
	sim.StatePaused:      {itemResume, itemMainMenu, itemQuit},
	sim.StateGameOver:    {itemRestart, itemMainMenu, itemQuit},
}

func menuFor(s sim.State) []menuItem {
	if items, ok := menus[s]; ok {
		return items
	}
	return []menuItem{itemBack}
}

func (g *Game) label(it menuItem) string {
	switch it {
	case itemPlay:
		return "Play"
	case itemOptions:
		return "Options"
	case itemQuit:
		return "Quit"
	case itemSound:
		if g.soundOn {
			return "Sound: on"
		}
		return "Sound: off"
	case itemDifficulty:
		return fmt.Sprintf("Difficulty: %s", g.preset)
	case itemBack:
		return "Back"
	case itemResume:
		return "Resume"
	case itemMainMenu:
		return "Main menu"
	case itemRestart:
		return "Play again"
	default:
		return ""
	}
}

// choose runs the selected item. It returns the engine action to submit, if
// any, and whether the player asked to leave the program.
func (g *Game) choose(state sim.State, it menuItem) (act sim.Action, ok, quit bool) {
	switch it {
	case itemPlay, itemResume:
		return sim.ActConfirm, true, false
	case itemOptions:
		return sim.ActOptions, true, false
	case itemQuit:
		return 0, false, true
	case itemBack:
		return sim.ActBack, true, false
	case itemRestart:
		return sim.ActRestart, true, false
	case itemMainMenu:
		if state == sim.StateGameOver {
			return sim.ActConfirm, true, false
		}
		return sim.ActBack, true, false
	case itemSound:
		g.soundOn = !g.soundOn
		g.uiSound = true
		logger.Debug("sound toggled", "on", g.soundOn)
	case itemDifficulty:
		g.cycleDifficulty()
		g.uiSound = true
	}
	return 0, false, false
}

// cycleDifficulty moves to the next preset. Only the pacing curve changes;
// installation tuning keeps the values the run was loaded with.
func (g *Game) cycleDifficulty() {
	g.preset = config.NextPreset(g.preset)
	g.pacer.SetEnabled(!config.IsFixedPreset(g.preset))
	g.pacer.SetInitialLevel(config.InitialLevelForPreset(g.preset))
	logger.Debug("difficulty changed", "preset", g.preset)
}
