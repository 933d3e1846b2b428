package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/musou/internal/core"
)

// DefaultHoldTicks is how many ticks a movement key stays held after the
// terminal last reported it. Terminals auto-repeat held keys but never send
// releases.
const DefaultHoldTicks = 3

// KeyMap defines the key bindings for play.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Boost   key.Binding
	Fire    key.Binding
	Spread  key.Binding
	Gravity key.Binding
	Shield  key.Binding
	EMP     key.Binding
	Hyper   key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Boost, k.Fire, k.Spread, k.Shield, k.EMP, k.Hyper, k.Gravity, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Boost},
		{k.Fire, k.Spread},
		{k.Shield, k.EMP, k.Hyper, k.Gravity},
		{k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "right"),
		),
		Boost: key.NewBinding(
			key.WithKeys("shift+up", "shift+down", "shift+left", "shift+right"),
			key.WithHelp("shift+arrows", "boost"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "fire"),
		),
		Spread: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "spread"),
		),
		Gravity: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "gravity"),
		),
		Shield: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "shield"),
		),
		EMP: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "emp"),
		),
		Hyper: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "hyper"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// boostDirections maps shifted arrows to the direction they move in.
var boostDirections = map[string]core.Action{
	"shift+up":    core.ActionUp,
	"shift+down":  core.ActionDown,
	"shift+left":  core.ActionLeft,
	"shift+right": core.ActionRight,
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// MapKey translates a key message to the actions it triggers.
// A shifted arrow yields both the direction and ActionBoost.
// Returns nil for unbound keys, and isQuit for a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (actions []core.Action, isQuit bool) {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return nil, true
	case key.Matches(msg, k.Boost):
		return []core.Action{boostDirections[msg.String()], core.ActionBoost}, false
	case key.Matches(msg, k.Up):
		return []core.Action{core.ActionUp}, false
	case key.Matches(msg, k.Down):
		return []core.Action{core.ActionDown}, false
	case key.Matches(msg, k.Left):
		return []core.Action{core.ActionLeft}, false
	case key.Matches(msg, k.Right):
		return []core.Action{core.ActionRight}, false
	case key.Matches(msg, k.Fire):
		return []core.Action{core.ActionFire}, false
	case key.Matches(msg, k.Spread):
		return []core.Action{core.ActionSpread}, false
	case key.Matches(msg, k.Gravity):
		return []core.Action{core.ActionGravity}, false
	case key.Matches(msg, k.Shield):
		return []core.Action{core.ActionShield}, false
	case key.Matches(msg, k.EMP):
		return []core.Action{core.ActionEMP}, false
	case key.Matches(msg, k.Hyper):
		return []core.Action{core.ActionHyper}, false
	}
	return nil, false
}

// Apply routes a key message into the hold tracker (movement) or the frame
// (one-shot presses). Returns true if the key was a quit request.
func (km *KeyMapper) Apply(msg tea.KeyMsg, hold *core.KeyHold, frame *core.InputFrame) bool {
	actions, isQuit := km.MapKey(msg)
	for _, a := range actions {
		if a.Held() {
			hold.Press(a)
		} else {
			frame.Set(a)
		}
	}
	return isQuit
}
