package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Theme   key.Binding
	Variant key.Binding
	Size    key.Binding
	Badge   key.Binding
	Motion  key.Binding
	Active  key.Binding
	Refresh key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Theme:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "cycle theme")),
		Variant: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "button variant")),
		Size:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "button size")),
		Badge:   key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "badge variant")),
		Motion:  key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "motion")),
		Active:  key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "hover/press")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "re-detect terminal")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Theme, k.Variant, k.Active, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Theme, k.Refresh},
		{k.Variant, k.Size, k.Badge},
		{k.Motion, k.Active},
		{k.Help, k.Quit},
	}
}
