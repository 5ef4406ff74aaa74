package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Continue key.Binding
	Next     key.Binding
	Prev     key.Binding
	UpDown   key.Binding
	Toggle   key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Continue: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "continue")),
		Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous")),
		UpDown:   key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "choose")),
		Toggle:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Continue, k.Prev, k.UpDown, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Continue, k.Next, k.Prev, k.UpDown, k.Toggle, k.Quit}}
}
