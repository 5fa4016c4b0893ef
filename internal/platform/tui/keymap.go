package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// KeyMap holds the key bindings of the game screen. It also feeds the help line.
type KeyMap struct {
	Tap        key.Binding
	Replay     key.Binding
	Pause      key.Binding
	Autopilot  key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tap: key.NewBinding(
			key.WithKeys(" ", "up", "w", "enter"),
			key.WithHelp("space", "flap"),
		),
		Replay: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "replay"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Autopilot: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "autopilot"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tap, k.Pause, k.Autopilot, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tap, k.Replay, k.Pause},
		{k.Autopilot, k.Screenshot, k.Quit},
	}
}

// KeyMapper translates Bubble Tea input messages to platform actions.
// This centralizes bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings used by the mapper.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.keys.Screenshot):
		return core.ActionScreenshot, false
	case key.Matches(msg, km.keys.Tap):
		return core.ActionTap, false
	case key.Matches(msg, km.keys.Replay):
		return core.ActionReplay, false
	case key.Matches(msg, km.keys.Pause):
		return core.ActionPause, false
	case key.Matches(msg, km.keys.Autopilot):
		return core.ActionAutopilot, false
	}
	return core.ActionNone, false
}

// MapMouse reports whether a mouse message is a tap, and on which cell.
// A tap fires on the left button's press; motion and release are ignored.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) (col, row int, ok bool) {
	if msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionPress {
		return 0, 0, false
	}
	return msg.X, msg.Y, true
}
