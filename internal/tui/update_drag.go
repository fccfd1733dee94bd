package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"dragboard/internal/drag"
)

// updateDragMode moves a card with the keyboard. The cursor walks the same
// drop positions a pointer would hit: before each card, the end of each
// column, and the burn barrel to the right of the last column.
func (m *Model) updateDragMode(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if !m.drag.Dragging() {
		m.mode = normalMode
		return nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Cancel), keyMsg.String() == "ctrl+c":
		return m.finishDrag(m.drag.Cancel())

	case key.Matches(keyMsg, m.keys.Drop):
		return m.finishDrag(m.drag.Drop(m.board))

	case key.Matches(keyMsg, m.keys.Left):
		if m.cursor.column > 0 {
			m.cursor.column--
			m.clampCursor()
		}

	case key.Matches(keyMsg, m.keys.Right):
		if m.cursor.column < len(m.board.Columns) {
			m.cursor.column++
			m.clampCursor()
		}

	case key.Matches(keyMsg, m.keys.Up):
		pos := m.cursor.pos - 1
		if own, ok := m.ownSlot(); ok && pos == own+1 {
			pos = own
		}
		if pos >= 0 {
			m.cursor.pos = pos
		}

	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor.column >= len(m.board.Columns) {
			break
		}
		pos := m.cursor.pos + 1
		if own, ok := m.ownSlot(); ok && pos == own+1 {
			pos = own + 2
		}
		if pos <= m.board.Count(m.board.Columns[m.cursor.column].Tag) {
			m.cursor.pos = pos
		}
	}
	m.drag.Over(m.cursorTarget())
	return nil
}

func (m *Model) clampCursor() {
	if m.cursor.column >= len(m.board.Columns) {
		m.cursor.pos = 0
		return
	}
	if n := m.board.Count(m.board.Columns[m.cursor.column].Tag); m.cursor.pos > n {
		m.cursor.pos = n
	}
	if own, ok := m.ownSlot(); ok && m.cursor.pos == own+1 {
		m.cursor.pos = own
	}
}

// ownSlot is the position of the carried card when the cursor is in its
// column. The slot right after it drops the card where it already is, so the
// cursor never rests there.
func (m *Model) ownSlot() (int, bool) {
	if m.cursor.column >= len(m.board.Columns) {
		return 0, false
	}
	tag := m.board.Columns[m.cursor.column].Tag
	for i, c := range m.board.Column(tag) {
		if c.ID == m.drag.Payload() {
			return i, true
		}
	}
	return 0, false
}

func (m *Model) cursorTarget() drag.Target {
	if m.cursor.column >= len(m.board.Columns) {
		return m.burnTarget()
	}
	tag := m.board.Columns[m.cursor.column].Tag
	t := drag.Target{Kind: drag.ColumnTarget, Column: tag, Before: drag.End}
	if cards := m.board.Column(tag); m.cursor.pos < len(cards) {
		t.Before = cards[m.cursor.pos].ID
	}
	return t
}

func (m *Model) burnTarget() drag.Target {
	return drag.Target{Kind: drag.BurnTarget}
}
