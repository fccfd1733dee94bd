package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"dragboard/internal/board"
	"dragboard/internal/card"
	"dragboard/internal/column"
	"dragboard/internal/debug"
	"dragboard/internal/drag"
)

type mode int

const (
	normalMode mode = iota
	addMode
	dragMode
	commandMode
	fzfMode
)

type clearStatusMsg struct{}

type statusMsg string

func clearStatusCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// keyCursor is the drop position while dragging with the keyboard. column
// equal to the number of columns means the burn barrel.
type keyCursor struct {
	column int
	pos    int
}

type Model struct {
	board  *board.Board
	drag   drag.Controller
	layout drag.Layout

	mode            mode
	focusedColumn   int
	columnCardFocus []int
	addingColumn    int
	cursor          keyCursor

	textInput textinput.Model
	fzf       FZFModel
	keys      keyMap
	help      help.Model

	statusMessage string
	width         int
	height        int
}

func NewModel(b *board.Board) Model {
	ti := textinput.New()
	ti.CharLimit = 200

	m := Model{
		board:           b,
		columnCardFocus: make([]int, len(b.Columns)),
		addingColumn:    -1,
		textInput:       ti,
		fzf:             NewFZFModel(),
		keys:            defaultKeyMap(),
		help:            help.New(),
	}
	m.relayout()
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	m.relayout()
	return m, cmd
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.fzf.SetSize(msg.Width, msg.Height)
		if m.drag.Dragging() {
			// Geometry under the pointer is stale now.
			m.finishDrag(m.drag.Cancel())
		}
		return nil

	case clearStatusMsg:
		m.statusMessage = ""
		return nil

	case statusMsg:
		m.statusMessage = string(msg)
		return clearStatusCmd(2 * time.Second)

	case fzfCardSelectedMsg:
		m.mode = normalMode
		m.fzf.Blur()
		m.focusCard(msg.card.ID)
		return nil

	case fzfCancelledMsg:
		m.mode = normalMode
		m.fzf.Blur()
		return nil

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	switch m.mode {
	case addMode:
		return m.updateAddMode(msg)
	case dragMode:
		return m.updateDragMode(msg)
	case commandMode:
		return m.updateCommandMode(msg)
	case fzfMode:
		var cmd tea.Cmd
		m.fzf, cmd = m.fzf.Update(msg)
		return cmd
	default:
		return m.updateNormalMode(msg)
	}
}

func (m *Model) View() string {
	if m.mode == fzfMode {
		return m.fzf.View()
	}
	view, _ := m.render()
	return view
}

func (m *Model) relayout() {
	_, m.layout = m.render()
}

func (m *Model) currentColumn() column.Column {
	return m.board.Columns[m.focusedColumn]
}

func (m *Model) currentCards() []card.Card {
	if len(m.board.Columns) == 0 {
		return nil
	}
	return m.board.Column(m.currentColumn().Tag)
}

func (m *Model) currentFocusedCard() int {
	if m.focusedColumn >= len(m.columnCardFocus) {
		return 0
	}
	return m.columnCardFocus[m.focusedColumn]
}

func (m *Model) setCurrentFocusedCard(i int) {
	if m.focusedColumn < len(m.columnCardFocus) {
		m.columnCardFocus[m.focusedColumn] = i
	}
}

// focusedCard returns the card under keyboard focus, if the column has any.
func (m *Model) focusedCard() (card.Card, bool) {
	cards := m.currentCards()
	i := m.currentFocusedCard()
	if i < 0 || i >= len(cards) {
		return card.Card{}, false
	}
	return cards[i], true
}

func (m *Model) clampFocusedCard() {
	for i, col := range m.board.Columns {
		n := m.board.Count(col.Tag)
		switch {
		case n == 0:
			m.columnCardFocus[i] = 0
		case m.columnCardFocus[i] >= n:
			m.columnCardFocus[i] = n - 1
		case m.columnCardFocus[i] < 0:
			m.columnCardFocus[i] = 0
		}
	}
}

// focusCard moves keyboard focus to the card with the given id.
func (m *Model) focusCard(id string) {
	c, ok := m.board.Get(id)
	if !ok {
		m.clampFocusedCard()
		return
	}
	ci := column.Index(m.board.Columns, c.Column)
	if ci < 0 {
		return
	}
	m.focusedColumn = ci
	for i, other := range m.board.Column(c.Column) {
		if other.ID == id {
			m.columnCardFocus[ci] = i
			break
		}
	}
}

func (m *Model) setStatus(s string) tea.Cmd {
	m.statusMessage = s
	return clearStatusCmd(2 * time.Second)
}

func (m *Model) startDrag(id string) bool {
	if !m.drag.Start(id) {
		return false
	}
	debug.Log("drag start %s", id)
	return true
}

func (m *Model) finishDrag(res drag.Result) tea.Cmd {
	if m.mode == dragMode {
		m.mode = normalMode
	}
	switch res.Outcome {
	case drag.Moved:
		debug.Log("drop %s into %s before %q changed=%v", res.CardID, res.Target.Column, res.Target.Before, res.Changed)
		m.focusCard(res.CardID)
	case drag.Burned:
		debug.Log("burn %s changed=%v", res.CardID, res.Changed)
		m.clampFocusedCard()
		if res.Changed {
			return m.setStatus("Card burned")
		}
	case drag.Aborted:
		debug.Log("drag cancelled %s", res.CardID)
	}
	return nil
}
