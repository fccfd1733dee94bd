package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"dragboard/internal/column"
	"dragboard/internal/debug"
)

// handleMouse turns pointer events into drag gestures. A left press on a card
// picks it up, motion with the button held updates the drop target from the
// current layout, and the release drops it there. Releasing away from any
// column or the burn barrel cancels the gesture.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action == tea.MouseActionRelease && m.drag.Dragging() && m.mode != dragMode {
		m.drag.Over(m.layout.TargetAt(msg.X, msg.Y))
		return m.finishDrag(m.drag.Drop(m.board))
	}
	if m.mode == fzfMode || m.mode == commandMode {
		return nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		if m.drag.Dragging() {
			// A press while a keyboard drag is in flight drops it where
			// the pointer is.
			m.drag.Over(m.layout.TargetAt(msg.X, msg.Y))
			return m.finishDrag(m.drag.Drop(m.board))
		}
		if id, ok := m.layout.CardAt(msg.X, msg.Y); ok {
			if m.mode == addMode {
				m.closeForm()
			}
			m.focusCard(id)
			if m.startDrag(id) {
				m.drag.Over(m.layout.TargetAt(msg.X, msg.Y))
			}
			return nil
		}
		if tag, ok := m.layout.AddButtonAt(msg.X, msg.Y); ok {
			i := column.Index(m.board.Columns, tag)
			if m.mode == addMode && m.addingColumn == i {
				return nil
			}
			return m.openForm(i)
		}

	case tea.MouseActionMotion:
		if !m.drag.Dragging() || m.mode == dragMode || msg.Button != tea.MouseButtonLeft {
			return nil
		}
		if m.drag.Over(m.layout.TargetAt(msg.X, msg.Y)) {
			t := m.drag.Target()
			debug.Log("drag over kind=%d column=%s before=%q", t.Kind, t.Column, t.Before)
		}

	}
	return nil
}
