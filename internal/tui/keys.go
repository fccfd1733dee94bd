package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Left   key.Binding
	Right  key.Binding
	Up     key.Binding
	Down   key.Binding
	Add    key.Binding
	Grab   key.Binding
	Drop   key.Binding
	Cancel key.Binding
	Burn   key.Binding
	Yank   key.Binding
	Find   key.Binding
	Cmd    key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left:   key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/l", "column")),
		Right:  key.NewBinding(key.WithKeys("l", "right")),
		Up:     key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("j/k", "card")),
		Down:   key.NewBinding(key.WithKeys("j", "down")),
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Grab:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "drag")),
		Drop:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "drop")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Burn:   key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "burn")),
		Yank:   key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
		Find:   key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "find")),
		Cmd:    key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "command")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Up, k.Add, k.Grab, k.Burn, k.Yank, k.Find, k.Cmd, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// dragHelp is shown while a card is carried with the keyboard.
type dragHelp struct{ keys keyMap }

func (d dragHelp) ShortHelp() []key.Binding {
	return []key.Binding{d.keys.Left, d.keys.Up, d.keys.Drop, d.keys.Cancel}
}

func (d dragHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{d.ShortHelp()}
}
