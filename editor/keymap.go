package editor

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the editor key bindings.
//
// Bindings must be portable across terminals; plain digits are left to
// the text input, so level shortcuts use alt.
type KeyMap struct {
	Levels [6]key.Binding

	ToggleSettings key.Binding
	ClosePanel     key.Binding

	PanelUp, PanelDown key.Binding
	PanelSelect        key.Binding
}

func DefaultKeyMap() KeyMap {
	var km KeyMap
	for i := range km.Levels {
		n := strconv.Itoa(i + 1)
		km.Levels[i] = key.NewBinding(key.WithKeys("alt+"+n), key.WithHelp("alt+"+n, "heading "+n))
	}

	km.ToggleSettings = key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "heading levels"))
	km.ClosePanel = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close panel"))

	km.PanelUp = key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "previous level"))
	km.PanelDown = key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "next level"))
	km.PanelSelect = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply level"))

	return km
}

func (km KeyMap) isZero() bool {
	return len(km.ToggleSettings.Keys()) == 0 && len(km.PanelSelect.Keys()) == 0
}
