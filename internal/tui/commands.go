package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"dragboard/internal/card"
	"dragboard/internal/drag"
)

type commandInfo struct {
	execute        func(m *Model, command, args string) tea.Cmd
	getCompletions func(m *Model, args string) []string
}

var commandRegistry = make(map[string]commandInfo)

func registerCommand(name string, info commandInfo) {
	commandRegistry[name] = info
}

func init() {
	registerCommand("q", commandInfo{execute: cmdQuit})
	registerCommand("quit", commandInfo{execute: cmdQuit})

	registerCommand("new", commandInfo{execute: cmdNew})
	registerCommand("burn", commandInfo{execute: cmdBurn})
	registerCommand("move", commandInfo{
		execute: cmdMove,
		getCompletions: func(m *Model, args string) []string {
			tags := make([]string, 0, len(m.board.Columns))
			for _, c := range m.board.Columns {
				tags = append(tags, c.Tag)
			}
			return tags
		},
	})
	registerCommand("fzf", commandInfo{execute: cmdFzf})
}

func cmdQuit(m *Model, command, args string) tea.Cmd {
	return tea.Quit
}

func cmdFzf(m *Model, command, args string) tea.Cmd {
	return m.openFZF()
}

func cmdNew(m *Model, command, args string) tea.Cmd {
	if _, ok := card.NormalizeTitle(args); !ok {
		m.statusMessage = "Usage: :new <title>"
		return clearStatusCmd(3 * time.Second)
	}
	c, ok := m.board.Create(m.currentColumn().Tag, args)
	if !ok {
		return nil
	}
	m.focusCard(c.ID)
	return nil
}

func cmdBurn(m *Model, command, args string) tea.Cmd {
	c, ok := m.focusedCard()
	if !ok {
		return m.setStatus("No card to burn")
	}
	return m.burn(c.ID)
}

func cmdMove(m *Model, command, args string) tea.Cmd {
	if !m.board.HasColumn(args) {
		m.statusMessage = fmt.Sprintf("Unknown column: %q", args)
		return clearStatusCmd(3 * time.Second)
	}
	c, ok := m.focusedCard()
	if !ok {
		return m.setStatus("No card to move")
	}
	if !m.startDrag(c.ID) {
		return nil
	}
	m.drag.Over(drag.Target{Kind: drag.ColumnTarget, Column: args, Before: drag.End})
	return m.finishDrag(m.drag.Drop(m.board))
}
