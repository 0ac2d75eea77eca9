package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Tab       key.Binding
	ShiftTab  key.Binding
	Quit      key.Binding
	Help      key.Binding
	Quest     key.Binding
	Shop      key.Binding
	Rename    key.Binding
	Recite    key.Binding
	Speak     key.Binding
	PrevWord  key.Binding
	NextWord  key.Binding
	SpeakWord key.Binding
	Back      key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quest: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "claim quest"),
		),
		Shop: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "mystery box"),
		),
		Rename: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "set name"),
		),
		Recite: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "recited it"),
		),
		Speak: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "speak/pause"),
		),
		PrevWord: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "prev word"),
		),
		NextWord: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "next word"),
		),
		SpeakWord: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "speak word"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
	}
}
