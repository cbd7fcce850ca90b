package main

import (
	"github.com/charmbracelet/bubbles/key"
)

type Keymap struct {
	Quit         key.Binding
	AddMarker    key.Binding
	NextMarker   key.Binding
	PrevMarker   key.Binding
	RemoveMarker key.Binding
	Grab         key.Binding
	NudgeLeft    key.Binding
	NudgeRight   key.Binding
	JumpLeft     key.Binding
	JumpRight    key.Binding
	Drop         key.Binding
	Cancel       key.Binding
	Settings     key.Binding
	Share        key.Binding
	ShowData     key.Binding
	ToggleChart  key.Binding
	NextChart    key.Binding
	Reprobe      key.Binding
	ScrollUp     key.Binding
	ScrollDown   key.Binding
	OpenHelp     key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	AddMarker: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add birth year"),
	),
	NextMarker: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next marker"),
	),
	PrevMarker: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous marker"),
	),
	RemoveMarker: key.NewBinding(
		key.WithKeys("x", "delete"),
		key.WithHelp("x", "remove marker"),
	),
	Grab: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "grab marker"),
	),
	NudgeLeft: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←", "move 1 year back"),
	),
	NudgeRight: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→", "move 1 year on"),
	),
	JumpLeft: key.NewBinding(
		key.WithKeys("shift+left", "H"),
		key.WithHelp("shift+←", "move 5 years back"),
	),
	JumpRight: key.NewBinding(
		key.WithKeys("shift+right", "L"),
		key.WithHelp("shift+→", "move 5 years on"),
	),
	Drop: key.NewBinding(
		key.WithKeys("enter", "g"),
		key.WithHelp("enter", "drop marker"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel move"),
	),
	Settings: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "choose statistics"),
	),
	Share: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "share link"),
	),
	ShowData: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "view data"),
	),
	ToggleChart: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "chart pane"),
	),
	NextChart: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "next chart"),
	),
	Reprobe: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload data"),
	),
	ScrollUp: key.NewBinding(
		key.WithKeys("k", "up", "pgup"),
		key.WithHelp("k/↑", "scroll up"),
	),
	ScrollDown: key.NewBinding(
		key.WithKeys("j", "down", "pgdown"),
		key.WithHelp("j/↓", "scroll down"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help / keys"),
	),
}

// Legend groups the bindings for the help dialog, one column each.
func (k Keymap) Legend() [][]key.Binding {
	return [][]key.Binding{
		{k.AddMarker, k.NextMarker, k.PrevMarker, k.RemoveMarker, k.Grab},
		{k.NudgeLeft, k.NudgeRight, k.JumpLeft, k.JumpRight, k.Drop, k.Cancel},
		{k.Settings, k.Share, k.ShowData, k.ToggleChart, k.NextChart, k.Reprobe, k.OpenHelp, k.Quit},
	}
}
