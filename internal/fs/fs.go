// Package fs reads board definition files. Boards are never written back:
// card state lives only as long as the program runs.
package fs

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"dragboard/internal/board"
	"dragboard/internal/card"
	"dragboard/internal/column"
)

const BoardFileName = "board.yaml"

var (
	ErrNoColumns       = errors.New("board has no columns")
	ErrDuplicateColumn = errors.New("duplicate column tag")
	ErrUnknownColumn   = errors.New("unknown column")
	ErrDuplicateID     = errors.New("duplicate card id")
	ErrEmptyTitle      = errors.New("empty card title")
)

type boardFile struct {
	Columns []column.Column `yaml:"columns"`
	Cards   []card.Card     `yaml:"cards"`
}

// LoadBoard reads the board file at path. A missing file is an error; use
// SampleBoard for the built-in board.
func LoadBoard(path string, ids board.IDGenerator) (*board.Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read board file: %w", err)
	}
	b, err := ParseBoard(data, ids)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// ParseBoard decodes a YAML board definition and validates it.
func ParseBoard(data []byte, ids board.IDGenerator) (*board.Board, error) {
	var f boardFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode board: %w", err)
	}
	if len(f.Columns) == 0 {
		return nil, ErrNoColumns
	}

	cols := make([]column.Column, 0, len(f.Columns))
	for i, c := range f.Columns {
		if c.Tag == "" {
			return nil, fmt.Errorf("column %d: %w", i+1, ErrUnknownColumn)
		}
		if column.Index(cols, c.Tag) >= 0 {
			return nil, fmt.Errorf("column %q: %w", c.Tag, ErrDuplicateColumn)
		}
		if c.Label == "" {
			c.Label = c.Tag
		}
		cols = append(cols, c)
	}

	seen := make(map[string]struct{}, len(f.Cards))
	cards := make([]card.Card, 0, len(f.Cards))
	for i, c := range f.Cards {
		title, ok := card.NormalizeTitle(c.Title)
		if !ok {
			return nil, fmt.Errorf("card %d: %w", i+1, ErrEmptyTitle)
		}
		if column.Index(cols, c.Column) < 0 {
			return nil, fmt.Errorf("card %q: %w %q", title, ErrUnknownColumn, c.Column)
		}
		if c.ID != "" {
			if _, dup := seen[c.ID]; dup {
				return nil, fmt.Errorf("card %q: %w %q", title, ErrDuplicateID, c.ID)
			}
			seen[c.ID] = struct{}{}
		}
		cards = append(cards, card.New(c.ID, title, c.Column))
	}

	return board.New(cols, reserved{ids: ids, taken: seen}, cards...), nil
}

// SampleBoard is the board shown when no file is given.
func SampleBoard(ids board.IDGenerator, seed bool) *board.Board {
	if !seed {
		return board.New(column.Defaults(), ids)
	}
	return board.New(column.Defaults(), ids,
		card.New("", "Look into render bug in dashboard", "backlog"),
		card.New("", "SOX compliance checklist", "backlog"),
		card.New("", "[SPIKE] Migrate to Azure", "backlog"),
		card.New("", "Document Notifications service", "backlog"),
		card.New("", "Research DB options for new microservice", "todo"),
		card.New("", "Postmortem for outage", "todo"),
		card.New("", "Sync with product on Q3 roadmap", "todo"),
		card.New("", "Refactor context providers to use Zustand", "doing"),
		card.New("", "Add logging to daily CRON", "doing"),
		card.New("", "Set up DD dashboards for Lambda listener", "done"),
	)
}

// reserved skips ids the file already assigned, so generated ids for the
// remaining seed cards cannot shadow them before they are inserted.
type reserved struct {
	ids   board.IDGenerator
	taken map[string]struct{}
}

func (r reserved) NewID() string {
	if r.ids == nil {
		r.ids = board.NewUUID()
	}
	for range 64 {
		id := r.ids.NewID()
		if _, ok := r.taken[id]; !ok {
			return id
		}
	}
	return ""
}
