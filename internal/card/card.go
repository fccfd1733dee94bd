package card

import "strings"

type Card struct {
	ID     string `yaml:"id,omitempty"`
	Title  string `yaml:"title"`
	Column string `yaml:"column"`
}

func New(id, title, column string) Card {
	return Card{ID: id, Title: strings.TrimSpace(title), Column: column}
}

// NormalizeTitle trims surrounding whitespace. An empty result means the
// title is not acceptable for a card.
func NormalizeTitle(title string) (string, bool) {
	t := strings.TrimSpace(title)
	return t, t != ""
}
