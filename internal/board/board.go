package board

import (
	"slices"

	"dragboard/internal/card"
	"dragboard/internal/column"
)

// End is the insertion anchor meaning "after the last card of the column".
const End = ""

const maxIDAttempts = 64

// Board is the card store: an ordered list of cards partitioned into columns
// by their Column tag. Store order is the render order inside every column.
type Board struct {
	Columns []column.Column
	cards   []card.Card
	ids     IDGenerator
}

// New builds a board over the given columns. Seed cards without an id get one
// from ids; seed cards are expected to reference known columns.
func New(columns []column.Column, ids IDGenerator, seed ...card.Card) *Board {
	if ids == nil {
		ids = NewUUID()
	}
	b := &Board{Columns: columns, ids: ids, cards: make([]card.Card, 0, len(seed))}
	for _, c := range seed {
		if c.ID == "" {
			c.ID = b.freshID()
		}
		b.cards = append(b.cards, c)
	}
	return b
}

// Cards returns a copy of the whole ordered sequence.
func (b *Board) Cards() []card.Card {
	return slices.Clone(b.cards)
}

func (b *Board) Len() int {
	return len(b.cards)
}

func (b *Board) HasColumn(tag string) bool {
	return column.Index(b.Columns, tag) >= 0
}

func (b *Board) Get(id string) (card.Card, bool) {
	i := b.index(id)
	if i < 0 {
		return card.Card{}, false
	}
	return b.cards[i], true
}

// Column returns the cards tagged with tag, in store order.
func (b *Board) Column(tag string) []card.Card {
	var out []card.Card
	for _, c := range b.cards {
		if c.Column == tag {
			out = append(out, c)
		}
	}
	return out
}

func (b *Board) Count(tag string) int {
	n := 0
	for _, c := range b.cards {
		if c.Column == tag {
			n++
		}
	}
	return n
}

// Next returns the id of the card that follows id inside its own column, or
// End when id is the last card there (or unknown).
func (b *Board) Next(id string) string {
	i := b.index(id)
	if i < 0 {
		return End
	}
	return b.nextInColumn(i)
}

// Create appends a card to the end of the store. The title is trimmed; an
// empty title or an unknown column creates nothing.
func (b *Board) Create(tag, title string) (card.Card, bool) {
	t, ok := card.NormalizeTitle(title)
	if !ok || !b.HasColumn(tag) {
		return card.Card{}, false
	}
	id := b.freshID()
	if id == "" {
		return card.Card{}, false
	}
	c := card.New(id, t, tag)
	b.cards = append(b.cards, c)
	return c, true
}

// Remove deletes the card with the given id. Removing an absent id is a no-op.
func (b *Board) Remove(id string) bool {
	i := b.index(id)
	if i < 0 {
		return false
	}
	b.cards = slices.Delete(b.cards, i, i+1)
	return true
}

// Move reassigns the card to column tag and places it immediately before the
// card before, or after every other card when before is End. It reports
// whether the sequence changed. Dropping a card where it already sits, an
// unknown card, column or anchor, and an anchor outside the target column
// all leave the store untouched.
func (b *Board) Move(id, tag, before string) bool {
	if id == before || !b.HasColumn(tag) {
		return false
	}
	from := b.index(id)
	if from < 0 {
		return false
	}
	if before != End {
		ai := b.index(before)
		if ai < 0 || b.cards[ai].Column != tag {
			return false
		}
	}

	moving := b.cards[from]
	if moving.Column == tag && b.nextInColumn(from) == before {
		return false
	}
	moving.Column = tag

	rest := make([]card.Card, 0, len(b.cards))
	rest = append(rest, b.cards[:from]...)
	rest = append(rest, b.cards[from+1:]...)

	at := len(rest)
	if before != End {
		at = slices.IndexFunc(rest, func(c card.Card) bool { return c.ID == before })
	}
	b.cards = slices.Insert(rest, at, moving)
	return true
}

func (b *Board) index(id string) int {
	return slices.IndexFunc(b.cards, func(c card.Card) bool { return c.ID == id })
}

func (b *Board) nextInColumn(i int) string {
	tag := b.cards[i].Column
	for _, c := range b.cards[i+1:] {
		if c.Column == tag {
			return c.ID
		}
	}
	return End
}

func (b *Board) freshID() string {
	for range maxIDAttempts {
		id := b.ids.NewID()
		if id != "" && b.index(id) < 0 {
			return id
		}
	}
	return ""
}
