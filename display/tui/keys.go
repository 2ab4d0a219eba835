package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all key bindings for the status bar shell.
type keyMap struct {
	Quit     key.Binding
	NextSlot key.Binding
	PrevSlot key.Binding
	Open     key.Binding
	Close    key.Binding
}

// keys holds the default key bindings used by the application.
var keys = keyMap{
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	NextSlot: key.NewBinding(key.WithKeys("tab", "right"), key.WithHelp("tab", "next slot")),
	PrevSlot: key.NewBinding(key.WithKeys("shift+tab", "left"), key.WithHelp("shift+tab", "prev slot")),
	Open:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
	Close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
}
