package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for normal mode.
type KeyMap struct {
	// General
	Help    key.Binding
	Quit    key.Binding
	Refresh key.Binding

	// Navigation
	Up         key.Binding
	Down       key.Binding
	GotoTop    key.Binding
	GotoBottom key.Binding
	Activate   key.Binding // Enter a folder or open a file
	GoBack     key.Binding // Parent folder
	Jump       key.Binding

	// Operations
	Copy      key.Binding
	Paste     key.Binding
	Delete    key.Binding
	Rename    key.Binding
	NewFile   key.Binding
	NewFolder key.Binding
}

// DefaultKeyMap returns the vim-flavoured bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reload"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		GotoTop: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "first entry"),
		),
		GotoBottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "last entry"),
		),
		Activate: key.NewBinding(
			key.WithKeys("l", "right", "enter"),
			key.WithHelp("enter/l", "open"),
		),
		GoBack: key.NewBinding(
			key.WithKeys("h", "left", "backspace"),
			key.WithHelp("h", "parent"),
		),
		Jump: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "go to path"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy"),
		),
		Paste: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "paste"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Rename: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rename"),
		),
		NewFile: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new file"),
		),
		NewFolder: key.NewBinding(
			key.WithKeys("N"),
			key.WithHelp("N", "new folder"),
		),
	}
}
