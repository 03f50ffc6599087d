package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/missile-arcade/internal/config"
	"github.com/vovakirdan/missile-arcade/internal/core"
)

// helpText is the short description shown next to each binding.
var helpText = map[core.Action]string{
	core.ActionUp:         "up",
	core.ActionDown:       "down",
	core.ActionLeft:       "left",
	core.ActionRight:      "right",
	core.ActionFireLeft:   "fire left",
	core.ActionFireMiddle: "fire middle",
	core.ActionFireRight:  "fire right",
	core.ActionConfirm:    "select",
	core.ActionBack:       "back",
	core.ActionPause:      "pause",
	core.ActionOptions:    "options",
	core.ActionRestart:    "restart",
	core.ActionQuit:       "quit",
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	bindings map[core.Action]key.Binding
	raw      map[core.Action][]string
}

// NewKeyMapper creates a key mapper from resolved bindings.
func NewKeyMapper(bindings map[core.Action][]string) *KeyMapper {
	km := &KeyMapper{
		bindings: make(map[core.Action]key.Binding, len(bindings)),
		raw:      bindings,
	}
	for a, keys := range bindings {
		if len(keys) == 0 {
			continue
		}
		names := make([]string, len(keys))
		for i, k := range keys {
			if k == " " {
				k = "space"
			}
			names[i] = k
		}
		km.bindings[a] = key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(strings.Join(names, "/"), helpText[a]),
		)
	}
	return km
}

// DefaultKeyMapper uses the embedded default keymap.
func DefaultKeyMapper() *KeyMapper {
	b, err := config.DefaultKeymap().Resolve()
	if err != nil {
		b = map[core.Action][]string{}
	}
	return NewKeyMapper(b)
}

// LoadKeyMapper reads the user keymap, falling back to defaults on error.
func LoadKeyMapper(path string) (*KeyMapper, error) {
	km, err := config.LoadKeymap(path)
	if err != nil {
		return DefaultKeyMapper(), err
	}
	b, err := km.Resolve()
	if err != nil {
		return DefaultKeyMapper(), err
	}
	return NewKeyMapper(b), nil
}

// Bindings returns the keys bound to each action.
func (km *KeyMapper) Bindings() map[core.Action][]string {
	return km.raw
}

// MapKey translates a key message to an action, or ActionNone.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	for _, a := range core.Actions() {
		b, ok := km.bindings[a]
		if ok && key.Matches(msg, b) {
			return a
		}
	}
	return core.ActionNone
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return action == core.ActionQuit
}

// ShortHelp returns key bindings for the short help view.
func (km *KeyMapper) ShortHelp() []key.Binding {
	return km.pick(core.ActionFireLeft, core.ActionFireMiddle, core.ActionFireRight, core.ActionPause, core.ActionQuit)
}

// FullHelp returns key bindings for the full help view.
func (km *KeyMapper) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		km.pick(core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight),
		km.pick(core.ActionFireLeft, core.ActionFireMiddle, core.ActionFireRight),
		km.pick(core.ActionConfirm, core.ActionBack, core.ActionPause, core.ActionOptions),
		km.pick(core.ActionRestart, core.ActionQuit),
	}
}

func (km *KeyMapper) pick(actions ...core.Action) []key.Binding {
	out := make([]key.Binding, 0, len(actions))
	for _, a := range actions {
		if b, ok := km.bindings[a]; ok {
			out = append(out, b)
		}
	}
	return out
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

var scoreboardKey = key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "scores"))

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	if key.Matches(msg, scoreboardKey) {
		return MenuActionScoreboard
	}
	switch km.MapKey(msg) {
	case core.ActionQuit:
		return MenuActionQuit
	case core.ActionUp:
		return MenuActionUp
	case core.ActionDown:
		return MenuActionDown
	case core.ActionConfirm:
		return MenuActionSelect
	case core.ActionBack:
		return MenuActionBack
	}
	return MenuActionNone
}
