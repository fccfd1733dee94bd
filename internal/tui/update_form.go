package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"dragboard/internal/card"
	"dragboard/internal/debug"
)

func (m *Model) openForm(columnIndex int) tea.Cmd {
	if columnIndex < 0 || columnIndex >= len(m.board.Columns) {
		return nil
	}
	m.statusMessage = ""
	m.mode = addMode
	m.addingColumn = columnIndex
	m.focusedColumn = columnIndex
	m.textInput.Prompt = ""
	m.textInput.Placeholder = "Add new task..."
	m.textInput.Width = 0
	m.textInput.SetValue("")
	return tea.Batch(m.textInput.Focus(), textinput.Blink)
}

func (m *Model) closeForm() {
	m.mode = normalMode
	m.addingColumn = -1
	m.textInput.Blur()
	m.textInput.SetValue("")
	m.textInput.Placeholder = ""
}

func (m *Model) updateAddMode(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEscape, tea.KeyCtrlC:
			m.closeForm()
			return nil
		case tea.KeyEnter:
			m.submitForm()
			return nil
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return cmd
}

// submitForm creates a card in the form's column. Whitespace-only input
// leaves the form open.
func (m *Model) submitForm() {
	if m.addingColumn < 0 || m.addingColumn >= len(m.board.Columns) {
		m.closeForm()
		return
	}
	if _, ok := card.NormalizeTitle(m.textInput.Value()); !ok {
		return
	}
	c, ok := m.board.Create(m.board.Columns[m.addingColumn].Tag, m.textInput.Value())
	if !ok {
		return
	}
	debug.Log("create %s in %s", c.ID, c.Column)
	m.closeForm()
	m.focusCard(c.ID)
}
