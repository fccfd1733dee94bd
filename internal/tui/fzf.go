package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"dragboard/internal/card"
)

type fzfCardSelectedMsg struct{ card card.Card }
type fzfCancelledMsg struct{}

type FzfItem struct {
	Card     card.Card
	ColLabel string
}

type itemSource []FzfItem

func (s itemSource) String(i int) string {
	return s[i].Card.Title
}

func (s itemSource) Len() int {
	return len(s)
}

var (
	fzfPopupStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62"))

	fzfPromptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))

	fzfSelectedItemStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("236")).
				Foreground(lipgloss.Color("229"))

	fzfMatchedCharStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205")).
				Underline(true)
)

// FZFModel is the card finder popup.
type FZFModel struct {
	textinput     textinput.Model
	items         itemSource
	matches       fuzzy.Matches
	selectedIndex int
	width         int
	height        int
}

func NewFZFModel() FZFModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Find a card..."
	ti.PromptStyle = fzfPromptStyle

	return FZFModel{
		textinput: ti,
	}
}

func (m *FZFModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// SetItems replaces the searchable cards. An empty query lists all of them.
func (m *FZFModel) SetItems(items []FzfItem) {
	m.items = items
	m.filter()
}

func (m *FZFModel) Focus() tea.Cmd {
	m.textinput.SetValue("")
	m.filter()
	return m.textinput.Focus()
}

func (m *FZFModel) Blur() {
	m.textinput.Blur()
	m.textinput.SetValue("")
}

func (m FZFModel) Update(msg tea.Msg) (FZFModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEscape, tea.KeyCtrlC:
			return m, func() tea.Msg { return fzfCancelledMsg{} }

		case tea.KeyEnter:
			if len(m.matches) > 0 {
				selected := m.items[m.matches[m.selectedIndex].Index]
				return m, func() tea.Msg { return fzfCardSelectedMsg{card: selected.Card} }
			}
			return m, func() tea.Msg { return fzfCancelledMsg{} }

		case tea.KeyDown, tea.KeyCtrlN:
			if m.selectedIndex < len(m.matches)-1 {
				m.selectedIndex++
			} else {
				m.selectedIndex = 0
			}
			return m, nil

		case tea.KeyUp, tea.KeyCtrlP:
			if m.selectedIndex > 0 {
				m.selectedIndex--
			} else if len(m.matches) > 0 {
				m.selectedIndex = len(m.matches) - 1
			}
			return m, nil
		}
	}

	prev := m.textinput.Value()
	var cmd tea.Cmd
	m.textinput, cmd = m.textinput.Update(msg)
	if m.textinput.Value() != prev {
		m.filter()
	}
	return m, cmd
}

func (m *FZFModel) filter() {
	m.selectedIndex = 0
	query := m.textinput.Value()
	if query == "" {
		m.matches = make(fuzzy.Matches, len(m.items))
		for i := range m.items {
			m.matches[i] = fuzzy.Match{Str: m.items[i].Card.Title, Index: i}
		}
		return
	}
	m.matches = fuzzy.FindFrom(query, m.items)
}

func (m FZFModel) popupWidth() int {
	w := int(float64(m.width) * 0.8)
	if w > 120 {
		w = 120
	}
	if w < 20 {
		w = 20
	}
	return w
}

func (m FZFModel) popupHeight() int {
	h := int(float64(m.height) * 0.6)
	if h < 5 {
		h = 5
	}
	return h
}

func (m FZFModel) renderResults(rows int) string {
	start := 0
	if m.selectedIndex >= rows {
		start = m.selectedIndex - rows + 1
	}

	var b strings.Builder
	for i := start; i < len(m.matches) && i < start+rows; i++ {
		match := m.matches[i]
		item := m.items[match.Index]

		matched := make(map[int]struct{}, len(match.MatchedIndexes))
		for _, idx := range match.MatchedIndexes {
			matched[idx] = struct{}{}
		}

		var title strings.Builder
		for charIdx, char := range item.Card.Title {
			if _, ok := matched[charIdx]; ok {
				title.WriteString(fzfMatchedCharStyle.Render(string(char)))
			} else {
				title.WriteRune(char)
			}
		}

		prefix := "  "
		if i == m.selectedIndex {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%s [%s]", prefix, title.String(), item.ColLabel)
		if i == m.selectedIndex {
			line = fzfSelectedItemStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteRune('\n')
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (m FZFModel) View() string {
	w, h := m.popupWidth(), m.popupHeight()
	content := lipgloss.JoinVertical(lipgloss.Left,
		"Find Card",
		lipgloss.NewStyle().Height(h-3).Render(m.renderResults(h-3)),
		m.textinput.View())
	popup := fzfPopupStyle.Width(w).Height(h).Render(content)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, popup)
}

func (m *Model) openFZF() tea.Cmd {
	var items []FzfItem
	for _, col := range m.board.Columns {
		for _, c := range m.board.Column(col.Tag) {
			items = append(items, FzfItem{Card: c, ColLabel: col.Label})
		}
	}
	m.fzf.SetItems(items)
	m.mode = fzfMode
	m.statusMessage = ""
	return m.fzf.Focus()
}
