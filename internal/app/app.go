package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"dragboard/internal/board"
	"dragboard/internal/fs"
	"dragboard/internal/tui"
)

type Options struct {
	// BoardPath is a board definition file; empty means the built-in board.
	BoardPath string
	// Seed fills the built-in board with sample cards.
	Seed bool
}

// LoadBoard builds the initial card store for opts.
func LoadBoard(opts Options, ids board.IDGenerator) (*board.Board, error) {
	if opts.BoardPath == "" {
		return fs.SampleBoard(ids, opts.Seed), nil
	}
	return fs.LoadBoard(opts.BoardPath, ids)
}

// Run starts the TUI and blocks until the user quits.
func Run(opts Options) error {
	b, err := LoadBoard(opts, board.NewUUID())
	if err != nil {
		return err
	}
	model := tui.NewModel(b)
	p := tea.NewProgram(&model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}
