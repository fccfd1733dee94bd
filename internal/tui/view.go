package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"dragboard/internal/card"
	"dragboard/internal/column"
	"dragboard/internal/drag"
)

const (
	cardWidth     = 22
	cardTextWidth = cardWidth - 2
	burnWidth     = 12
	burnHeight    = 5
	// tall enough for any board when the terminal size is not known yet
	unknownHeight = 1 << 12
)

var (
	columnHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Padding(0, 1)

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Width(cardWidth)

	focusedCardStyle = cardStyle.
				BorderForeground(lipgloss.Color("205"))

	draggedCardStyle = cardStyle.
				Faint(true).
				BorderForeground(lipgloss.Color("238"))

	indicatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("141"))

	addButtonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Padding(0, 1)

	formStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("141")).
			Width(cardWidth)

	formHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(0, 1)

	columnStyle = lipgloss.NewStyle().
			Padding(0, 1)

	burnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Foreground(lipgloss.Color("244")).
			Width(burnWidth).
			Height(burnHeight-2).
			Align(lipgloss.Center, lipgloss.Center)

	armedBurnStyle = burnStyle.
			BorderForeground(lipgloss.Color("196")).
			Foreground(lipgloss.Color("196"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))
)

// render draws the frame and returns the geometry of everything a pointer can
// hit in it. Hover state never changes heights, so the layout computed for a
// frame stays valid while a drag moves across it.
func (m *Model) render() (string, drag.Layout) {
	var layout drag.Layout
	var blocks []string
	x := 0
	boardHeight := m.boardHeight()

	for i, col := range m.board.Columns {
		block, area := m.renderColumn(col, i)
		w := lipgloss.Width(block)
		area.Rect = drag.Rect{X: x, Y: 0, W: w, H: boardHeight}
		for j := range area.Cards {
			area.Cards[j].Rect.X = x
			area.Cards[j].Rect.W = w
		}
		area.Add.X = x
		area.Add.W = w
		layout.Columns = append(layout.Columns, area)
		blocks = append(blocks, block)
		x += w
	}

	barrel := m.renderBurnBarrel()
	layout.Burn = drag.Rect{X: x, Y: 0, W: lipgloss.Width(barrel), H: lipgloss.Height(barrel)}
	blocks = append(blocks, barrel)

	boardView := lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
	if m.height > 0 {
		boardView = lipgloss.NewStyle().Height(boardHeight).MaxHeight(boardHeight).Render(boardView)
	}
	return lipgloss.JoinVertical(lipgloss.Left, boardView, m.renderFooter()), layout
}

func (m *Model) boardHeight() int {
	if m.height <= 1 {
		return unknownHeight
	}
	return m.height - 1
}

func (m *Model) renderColumn(col column.Column, columnIndex int) (string, drag.ColumnArea) {
	area := drag.ColumnArea{Tag: col.Tag}
	cards := m.board.Column(col.Tag)

	header := fmt.Sprintf("%s %s",
		lipgloss.NewStyle().Foreground(lipgloss.Color(col.Color)).Render(col.Label),
		countStyle.Render(fmt.Sprintf("%d", len(cards))))
	pieces := []string{columnHeaderStyle.Render(header)}
	y := lipgloss.Height(pieces[0])

	for i, c := range cards {
		pieces = append(pieces, m.renderIndicator(col.Tag, c.ID))
		y++
		rendered := m.renderCard(c, columnIndex, i)
		h := lipgloss.Height(rendered)
		area.Cards = append(area.Cards, drag.Slot{CardID: c.ID, Rect: drag.Rect{Y: y, H: h}})
		pieces = append(pieces, rendered)
		y += h
	}
	pieces = append(pieces, m.renderIndicator(col.Tag, drag.End))
	y++

	var add string
	if m.mode == addMode && m.addingColumn == columnIndex {
		add = lipgloss.JoinVertical(lipgloss.Left,
			formStyle.Render(m.textInput.View()),
			formHintStyle.Render("enter add · esc close"))
	} else {
		add = addButtonStyle.Render("+ Add card")
	}
	area.Add = drag.Rect{Y: y, H: lipgloss.Height(add)}
	pieces = append(pieces, add)

	return columnStyle.Render(lipgloss.JoinVertical(lipgloss.Left, pieces...)), area
}

func (m *Model) renderIndicator(tag, before string) string {
	t := m.drag.Target()
	if m.drag.Dragging() && t.IsColumn() && t.Column == tag && t.Before == before {
		return indicatorStyle.Render(strings.Repeat("─", cardWidth+2))
	}
	return strings.Repeat(" ", cardWidth+2)
}

func (m *Model) renderCard(c card.Card, columnIndex, cardIndex int) string {
	style := cardStyle
	switch {
	case m.drag.Dragging() && m.drag.Payload() == c.ID:
		style = draggedCardStyle
	case m.focusedColumn == columnIndex && m.currentFocusedCard() == cardIndex && m.mode != addMode:
		style = focusedCardStyle
	}
	return style.Render(truncate(c.Title, cardTextWidth))
}

func (m *Model) renderBurnBarrel() string {
	if m.drag.Armed() {
		return armedBurnStyle.Render("🔥\nburn")
	}
	return burnStyle.Render("🗑\nburn")
}

func (m *Model) renderFooter() string {
	switch {
	case m.mode == commandMode:
		return m.textInput.View()
	case m.statusMessage != "":
		return statusStyle.Render(m.statusMessage)
	case m.mode == dragMode:
		if c, ok := m.board.Get(m.drag.Payload()); ok {
			return fmt.Sprintf("moving %q  %s", truncate(c.Title, cardTextWidth), m.help.View(dragHelp{keys: m.keys}))
		}
		return m.help.View(dragHelp{keys: m.keys})
	default:
		return m.help.View(m.keys)
	}
}

// truncate shortens s to at most width terminal cells.
func truncate(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
