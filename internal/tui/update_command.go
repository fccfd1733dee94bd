package tui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) updateCommandMode(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEscape, tea.KeyCtrlC:
			m.mode = normalMode
			m.textInput.Blur()
			return nil
		case tea.KeyTab:
			m.completeCommand()
			return nil
		case tea.KeyEnter:
			input := m.textInput.Value()
			m.mode = normalMode
			m.textInput.Blur()
			return m.ExecuteCommand(input)
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return cmd
}

// ExecuteCommand runs a command line such as "new Write docs" or "move done".
func (m *Model) ExecuteCommand(input string) tea.Cmd {
	parts := strings.SplitN(strings.TrimSpace(input), " ", 2)
	command := parts[0]
	if command == "" {
		return nil
	}

	var args string
	if len(parts) > 1 {
		args = strings.TrimSpace(parts[1])
	}

	info, ok := commandRegistry[command]
	if !ok {
		return m.setStatus("Unknown command: " + command)
	}
	return info.execute(m, command, args)
}

// completeCommand fills in the command name, or its argument when the
// command offers completions, using the first candidate with a matching
// prefix.
func (m *Model) completeCommand() {
	value := m.textInput.Value()
	parts := strings.SplitN(value, " ", 2)

	if len(parts) == 1 {
		names := make([]string, 0, len(commandRegistry))
		for name := range commandRegistry {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if strings.HasPrefix(name, parts[0]) {
				m.textInput.SetValue(name + " ")
				m.textInput.CursorEnd()
				return
			}
		}
		return
	}

	info, ok := commandRegistry[parts[0]]
	if !ok || info.getCompletions == nil {
		return
	}
	for _, c := range info.getCompletions(m, parts[1]) {
		if strings.HasPrefix(c, parts[1]) {
			m.textInput.SetValue(parts[0] + " " + c)
			m.textInput.CursorEnd()
			return
		}
	}
}
