package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

type editorKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Backspace key.Binding
	Newline   key.Binding
	Split     key.Binding
	Add       key.Binding
	Delete    key.Binding
	MoveUp    key.Binding
	MoveDown  key.Binding
	Help      key.Binding
	Quit      key.Binding
}

var editorKeys = editorKeyMap{
	Up:        key.NewBinding(key.WithKeys("up")),
	Down:      key.NewBinding(key.WithKeys("down")),
	Left:      key.NewBinding(key.WithKeys("left")),
	Right:     key.NewBinding(key.WithKeys("right")),
	Backspace: key.NewBinding(key.WithKeys("backspace")),
	Newline:   key.NewBinding(key.WithKeys("enter")),
	Split: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "split at cursor"),
	),
	Add: key.NewBinding(
		key.WithKeys("ctrl+n"),
		key.WithHelp("ctrl+n", "new slide"),
	),
	Delete: key.NewBinding(
		key.WithKeys("ctrl+d"),
		key.WithHelp("ctrl+d", "delete slide"),
	),
	MoveUp: key.NewBinding(
		key.WithKeys("alt+up"),
		key.WithHelp("alt+↑", "move up"),
	),
	MoveDown: key.NewBinding(
		key.WithKeys("alt+down"),
		key.WithHelp("alt+↓", "move down"),
	),
	Help: key.NewBinding(
		key.WithKeys("ctrl+g"),
		key.WithHelp("ctrl+g", "more"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	),
}

func (k editorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Split, k.Add, k.Delete, k.Help, k.Quit}
}

func (k editorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Split, k.Add, k.Delete},
		{k.MoveUp, k.MoveDown},
		{k.Help, k.Quit},
	}
}

type presenterKeyMap struct {
	Next     key.Binding
	Previous key.Binding
	First    key.Binding
	Last     key.Binding
	Dark     key.Binding
	Quit     key.Binding
}

var presenterKeys = presenterKeyMap{
	Next: key.NewBinding(
		key.WithKeys("right", "down", " ", "space"),
		key.WithHelp("→/space", "next"),
	),
	Previous: key.NewBinding(
		key.WithKeys("left", "up"),
		key.WithHelp("←", "previous"),
	),
	First: key.NewBinding(
		key.WithKeys("home"),
		key.WithHelp("home", "first"),
	),
	Last: key.NewBinding(
		key.WithKeys("end"),
		key.WithHelp("end", "last"),
	),
	Dark: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "dark mode"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
