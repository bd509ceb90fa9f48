package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Left   key.Binding
	Right  key.Binding
	Toggle key.Binding
	Delete key.Binding
	Open   key.Binding
	Close  key.Binding
	Reload key.Binding
	Quit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		Toggle: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "items/outfits")),
		Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Open:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open outfit")),
		Close:  key.NewBinding(key.WithKeys("esc", "x"), key.WithHelp("esc", "close")),
		Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) browsing() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Toggle, k.Delete, k.Open, k.Reload, k.Quit}
}

func (k keyMap) detail() []key.Binding {
	return []key.Binding{k.Close, k.Quit}
}
