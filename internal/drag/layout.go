package drag

type Rect struct {
	X, Y, W, H int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Slot is a rendered card.
type Slot struct {
	CardID string
	Rect   Rect
}

// Boundary is the vertical midpoint of a rendered card.
type Boundary struct {
	CardID string
	Mid    int
}

// ColumnArea is the drop surface of one column.
type ColumnArea struct {
	Tag   string
	Rect  Rect
	Cards []Slot
	Add   Rect
}

// Boundaries lists card midpoints top to bottom.
func (a ColumnArea) Boundaries() []Boundary {
	out := make([]Boundary, 0, len(a.Cards))
	for _, s := range a.Cards {
		out = append(out, Boundary{CardID: s.CardID, Mid: s.Rect.Y + s.Rect.H/2})
	}
	return out
}

// Anchor picks the insertion anchor for a pointer at row y: the first card
// whose midpoint lies below the pointer, or End when there is none. bounds
// must be ordered top to bottom.
func Anchor(bounds []Boundary, y int) string {
	for _, b := range bounds {
		if y < b.Mid {
			return b.CardID
		}
	}
	return End
}

// Layout is the geometry of one rendered frame.
type Layout struct {
	Columns []ColumnArea
	Burn    Rect
}

// TargetAt resolves a pointer position to a drop target.
func (l Layout) TargetAt(x, y int) Target {
	if l.Burn.Contains(x, y) {
		return Target{Kind: BurnTarget}
	}
	for _, a := range l.Columns {
		if a.Rect.Contains(x, y) {
			return Target{Kind: ColumnTarget, Column: a.Tag, Before: Anchor(a.Boundaries(), y)}
		}
	}
	return Target{}
}

// CardAt returns the card rendered under the pointer.
func (l Layout) CardAt(x, y int) (string, bool) {
	for _, a := range l.Columns {
		if !a.Rect.Contains(x, y) {
			continue
		}
		for _, s := range a.Cards {
			if s.Rect.Contains(x, y) {
				return s.CardID, true
			}
		}
	}
	return "", false
}

// AddButtonAt returns the column whose add-card button is under the pointer.
func (l Layout) AddButtonAt(x, y int) (string, bool) {
	for _, a := range l.Columns {
		if a.Add.Contains(x, y) {
			return a.Tag, true
		}
	}
	return "", false
}
