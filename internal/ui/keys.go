package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the key bindings of the step display.
type KeyMap struct {
	Quit       key.Binding
	ToggleHelp key.Binding
	Reset      key.Binding
	SwitchView key.Binding
}

// DefaultKeys returns the default key bindings for the application.
func DefaultKeys() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		ToggleHelp: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "toggle help"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		SwitchView: key.NewBinding(
			key.WithKeys("p", "tab"),
			key.WithHelp("p/tab", "pet"),
		),
	}
}

// NewHelpModel returns a configured help model.
func NewHelpModel() help.Model {
	return help.New()
}

// screenKeyMap adapts bindings to the active screen for contextual help.
type screenKeyMap struct {
	keys   KeyMap
	screen screen
}

// ForScreen returns a contextual key map implementing help.KeyMap.
func (k KeyMap) ForScreen(s screen) help.KeyMap {
	return screenKeyMap{keys: k, screen: s}
}

// ShortHelp implements help.KeyMap.
func (s screenKeyMap) ShortHelp() []key.Binding {
	switchView := s.keys.SwitchView
	if s.screen == screenPet {
		switchView.SetHelp("p/tab", "steps")
		return []key.Binding{switchView, s.keys.Quit}
	}
	return []key.Binding{s.keys.Reset, switchView, s.keys.ToggleHelp, s.keys.Quit}
}

// FullHelp implements help.KeyMap.
func (s screenKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{s.keys.Reset, s.keys.SwitchView}, {s.keys.ToggleHelp, s.keys.Quit}}
}
