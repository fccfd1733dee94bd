package board

import (
	"fmt"
	"slices"
	"strings"
	"testing"

	"pgregory.net/rapid"

	"dragboard/internal/card"
	"dragboard/internal/column"
)

var tags = func() []string {
	var out []string
	for _, c := range column.Defaults() {
		out = append(out, c.Tag)
	}
	return out
}()

func genBoard(t *rapid.T) *Board {
	n := rapid.IntRange(0, 12).Draw(t, "n")
	cards := make([]card.Card, 0, n)
	for i := range n {
		tag := rapid.SampledFrom(tags).Draw(t, fmt.Sprintf("tag%d", i))
		cards = append(cards, card.New(fmt.Sprintf("id%d", i), fmt.Sprintf("card %d", i), tag))
	}
	return New(column.Defaults(), NewCounter("new"), cards...)
}

func columnViews(b *Board) map[string][]card.Card {
	out := make(map[string][]card.Card, len(tags))
	for _, tag := range tags {
		out[tag] = b.Column(tag)
	}
	return out
}

func TestColumnViewIsOrderedFilter(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := genBoard(t)
		tag := rapid.SampledFrom(tags).Draw(t, "tag")

		var want []card.Card
		for _, c := range b.Cards() {
			if c.Column == tag {
				want = append(want, c)
			}
		}
		if got := b.Column(tag); !slices.Equal(got, want) {
			t.Fatalf("Column(%q) = %v, want %v", tag, got, want)
		}
		if b.Count(tag) != len(want) {
			t.Fatalf("Count(%q) = %d, want %d", tag, b.Count(tag), len(want))
		}
	})
}

func TestMoveThenMoveBackRestoresColumns(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := genBoard(t)
		if b.Len() == 0 {
			t.Skip("empty board")
		}
		before := b.Cards()
		views := columnViews(b)

		c := rapid.SampledFrom(before).Draw(t, "card")
		origTag, origAnchor := c.Column, b.Next(c.ID)
		adjacent := origAnchor != End && before[slices.Index(ids(before), c.ID)+1].ID == origAnchor

		tag := rapid.SampledFrom(tags).Draw(t, "target")
		anchors := append(ids(b.Column(tag)), End)
		anchor := rapid.SampledFrom(anchors).Draw(t, "anchor")

		b.Move(c.ID, tag, anchor)
		b.Move(c.ID, origTag, origAnchor)

		for tag, want := range views {
			if got := b.Column(tag); !slices.Equal(got, want) {
				t.Fatalf("column %q = %v, want %v", tag, ids(got), ids(want))
			}
		}
		if adjacent && !slices.Equal(b.Cards(), before) {
			t.Fatalf("store = %v, want %v", ids(b.Cards()), ids(before))
		}
	})
}

func TestDropOnOwnPositionIsNoop(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := genBoard(t)
		if b.Len() == 0 {
			t.Skip("empty board")
		}
		before := b.Cards()
		c := rapid.SampledFrom(before).Draw(t, "card")
		anchor := rapid.SampledFrom([]string{c.ID, b.Next(c.ID)}).Draw(t, "anchor")

		if b.Move(c.ID, c.Column, anchor) {
			t.Fatalf("Move reported a change for a drop in place")
		}
		if !slices.Equal(b.Cards(), before) {
			t.Fatalf("store changed: %v, want %v", ids(b.Cards()), ids(before))
		}
	})
}

func TestMoveKeepsCardsAndIDs(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := genBoard(t)
		if b.Len() == 0 {
			t.Skip("empty board")
		}
		c := rapid.SampledFrom(b.Cards()).Draw(t, "card")
		tag := rapid.SampledFrom(tags).Draw(t, "target")
		anchor := rapid.SampledFrom(append(ids(b.Column(tag)), End)).Draw(t, "anchor")
		want := ids(b.Cards())
		slices.Sort(want)

		b.Move(c.ID, tag, anchor)

		got := ids(b.Cards())
		slices.Sort(got)
		if !slices.Equal(got, want) {
			t.Fatalf("ids after move = %v, want %v", got, want)
		}
		moved, _ := b.Get(c.ID)
		if moved.Column != tag {
			t.Fatalf("card column = %q, want %q", moved.Column, tag)
		}
		view := ids(b.Column(tag))
		i := slices.Index(view, c.ID)
		switch anchor {
		case c.ID:
			return
		case End:
			if i != len(view)-1 {
				t.Fatalf("card not last in %q: %v", tag, view)
			}
			return
		}
		if i+1 >= len(view) || view[i+1] != anchor {
			t.Fatalf("card not before %q in %q: %v", anchor, tag, view)
		}
	})
}

func TestRemoveChangesLengthByAtMostOne(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := genBoard(t)
		id := rapid.SampledFrom(append(ids(b.Cards()), "missing")).Draw(t, "id")
		n := b.Len()
		_, exists := b.Get(id)

		b.Remove(id)

		want := n
		if exists {
			want--
		}
		if b.Len() != want {
			t.Fatalf("len = %d, want %d", b.Len(), want)
		}
	})
}

func TestCreateAppendsTrimmedCard(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := genBoard(t)
		tag := rapid.SampledFrom(tags).Draw(t, "tag")
		title := rapid.StringMatching(`[ \t]{0,3}[a-zA-Z0-9 ]{0,12}[ \t]{0,3}`).Draw(t, "title")
		n := b.Len()

		c, ok := b.Create(tag, title)

		trimmed := strings.TrimSpace(title)
		if trimmed == "" {
			if ok || b.Len() != n {
				t.Fatalf("blank title created a card")
			}
			return
		}
		if !ok || b.Len() != n+1 {
			t.Fatalf("len = %d, want %d", b.Len(), n+1)
		}
		last := b.Cards()[n]
		if last != c || c.Title != trimmed || c.Column != tag {
			t.Fatalf("created %+v, want title %q in %q", c, trimmed, tag)
		}
		seen := map[string]bool{}
		for _, other := range b.Cards() {
			if seen[other.ID] {
				t.Fatalf("duplicate id %q", other.ID)
			}
			seen[other.ID] = true
		}
	})
}
