package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the browser
type KeyMap struct {
	NextGallery key.Binding
	PrevGallery key.Binding
	Up          key.Binding
	Down        key.Binding
	Open        key.Binding
	Close       key.Binding
	Previous    key.Binding
	Next        key.Binding
	Copy        key.Binding
	Edit        key.Binding
	NextField   key.Binding
	Submit      key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns a KeyMap with default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextGallery: key.NewBinding(
			key.WithKeys("right", "tab"),
			key.WithHelp("→/tab", "next gallery"),
		),
		PrevGallery: key.NewBinding(
			key.WithKeys("left", "shift+tab"),
			key.WithHelp("←/shift+tab", "previous gallery"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open image"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Previous: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("←/h", "previous image"),
		),
		Next: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("→/l", "next image"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy image URL"),
		),
		Edit: key.NewBinding(
			key.WithKeys("i", "enter"),
			key.WithHelp("i", "fill in form"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "send"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextGallery, k.Open, k.Close, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextGallery, k.PrevGallery, k.Up, k.Down, k.Open},
		{k.Previous, k.Next, k.Close, k.Copy},
		{k.Edit, k.NextField, k.Submit},
		{k.Help, k.Quit},
	}
}
