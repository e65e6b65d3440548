package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	enter     key.Binding
	tab       key.Binding
	backtab   key.Binding
	interrupt key.Binding
	quit      key.Binding
	pay       key.Binding
	refresh   key.Binding
	filter    key.Binding
	copy      key.Binding
}

var keys = keyMap{
	enter:     key.NewBinding(key.WithKeys("enter")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	interrupt: key.NewBinding(key.WithKeys("ctrl+c")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	pay:       key.NewBinding(key.WithKeys("p")),
	refresh:   key.NewBinding(key.WithKeys("r")),
	filter:    key.NewBinding(key.WithKeys("s")),
	copy:      key.NewBinding(key.WithKeys("c")),
}
