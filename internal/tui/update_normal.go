package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"dragboard/internal/debug"
)

func (m *Model) updateNormalMode(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Matches(keyMsg, m.keys.Quit) {
		return tea.Quit
	}
	if len(m.board.Columns) == 0 {
		return nil
	}
	if m.drag.Dragging() {
		// A mouse drag is in flight: only Esc, which cancels it, applies.
		if key.Matches(keyMsg, m.keys.Cancel) {
			return m.finishDrag(m.drag.Cancel())
		}
		return nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Find):
		return m.openFZF()

	case key.Matches(keyMsg, m.keys.Cmd):
		m.statusMessage = ""
		m.mode = commandMode
		m.textInput.Prompt = ":"
		m.textInput.Width = 0
		m.textInput.SetValue("")
		return m.textInput.Focus()

	case key.Matches(keyMsg, m.keys.Left):
		if m.focusedColumn > 0 {
			m.focusedColumn--
			m.clampFocusedCard()
		}

	case key.Matches(keyMsg, m.keys.Right):
		if m.focusedColumn < len(m.board.Columns)-1 {
			m.focusedColumn++
			m.clampFocusedCard()
		}

	case key.Matches(keyMsg, m.keys.Up):
		if i := m.currentFocusedCard(); i > 0 {
			m.setCurrentFocusedCard(i - 1)
		}

	case key.Matches(keyMsg, m.keys.Down):
		if i := m.currentFocusedCard(); i < len(m.currentCards())-1 {
			m.setCurrentFocusedCard(i + 1)
		}

	case key.Matches(keyMsg, m.keys.Add):
		return m.openForm(m.focusedColumn)

	case key.Matches(keyMsg, m.keys.Grab):
		c, ok := m.focusedCard()
		if !ok || !m.startDrag(c.ID) {
			return nil
		}
		m.mode = dragMode
		m.cursor = keyCursor{column: m.focusedColumn, pos: m.currentFocusedCard()}
		m.drag.Over(m.cursorTarget())

	case key.Matches(keyMsg, m.keys.Burn):
		c, ok := m.focusedCard()
		if !ok {
			return nil
		}
		return m.burn(c.ID)

	case key.Matches(keyMsg, m.keys.Yank):
		c, ok := m.focusedCard()
		if !ok {
			return nil
		}
		return copyTitleCmd(c.Title)
	}
	return nil
}

// burn sends a card through the burn barrel without a pointer gesture.
func (m *Model) burn(id string) tea.Cmd {
	if !m.startDrag(id) {
		return nil
	}
	m.drag.Over(m.burnTarget())
	return m.finishDrag(m.drag.Drop(m.board))
}

func copyTitleCmd(title string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(title); err != nil {
			debug.Log("clipboard: %v", err)
			return statusMsg(fmt.Sprintf("Clipboard error: %v", err))
		}
		return statusMsg("Copied card title")
	}
}
