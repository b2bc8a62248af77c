package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Kernel  key.Binding
	Policy  key.Binding
	Raise   key.Binding
	Lower   key.Binding
	Braille key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Kernel:  key.NewBinding(key.WithKeys("k"), key.WithHelp("k", "kernel")),
		Policy:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dither")),
		Raise:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "threshold")),
		Lower:   key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "threshold")),
		Braille: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "braille")),
		Quit:    key.NewBinding(key.WithKeys("esc", "ctrl+c", "q"), key.WithHelp("esc", "quit")),
	}
}

func (k keyMap) bindings() []key.Binding {
	return []key.Binding{k.Kernel, k.Policy, k.Raise, k.Lower, k.Braille, k.Quit}
}
